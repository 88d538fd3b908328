package register

import "sync"

type funcRegister struct {
	handlers map[any][]any
	locker   sync.Mutex
}

var fr = &funcRegister{
	handlers: make(map[any][]any),
}

type Handler[T any] func(T)

// RegisterFunc stores a setup handler under key, usually called from a
// package init so providers can resolve them after construction.
func RegisterFunc[T any](key any, handler Handler[T]) {
	fr.locker.Lock()
	fr.handlers[key] = append(fr.handlers[key], handler)
	fr.locker.Unlock()
}

func ResolveFuncHandlers[T any](key any) []Handler[T] {
	fr.locker.Lock()
	defer fr.locker.Unlock()

	var result []Handler[T]
	for _, v := range fr.handlers[key] {
		if h, ok := v.(Handler[T]); ok {
			result = append(result, h)
		}
	}
	return result
}
