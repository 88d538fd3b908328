package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// CustomizedError carries a trace chain, an HTTP status code, an i18n
// message key and an optional structured payload (e.g. field-keyed
// validation messages) from the place of failure up to the response
// boundary.
type CustomizedError struct {
	cause   error
	message string
	trace   []string
	wrap    error
	code    int
	data    map[string]interface{}
}

func New(trace, message string, err error) *CustomizedError {
	return &CustomizedError{
		cause:   err,
		message: message,
		trace:   []string{trace},
		code:    http.StatusInternalServerError,
	}
}

func Wrap(err error, trace, message string) *CustomizedError {
	ce := &CustomizedError{
		cause:   err,
		message: message,
		trace:   []string{trace},
		wrap:    err,
	}
	if income, ok := err.(*CustomizedError); ok {
		ce.code = income.code
	}
	return ce
}

func Trace(trace string, err error) *CustomizedError {
	if ce, ok := err.(*CustomizedError); ok {
		ce.trace = append(ce.trace, trace)
		return ce
	}
	return Wrap(err, trace, err.Error())
}

func (e *CustomizedError) Code(c int) *CustomizedError {
	e.code = c
	return e
}

func (e *CustomizedError) GetCode() int {
	return e.code
}

func (e *CustomizedError) WithData(data map[string]interface{}) *CustomizedError {
	e.data = data
	return e
}

func (e *CustomizedError) GetData() map[string]interface{} {
	return e.data
}

func (e *CustomizedError) Message() string {
	if e.message == "" {
		return e.cause.Error()
	}
	return e.message
}

func (e *CustomizedError) Unwrap() error {
	return e.wrap
}

func (e *CustomizedError) Error() string {
	otherDetails := `""`
	if ce, ok := e.wrap.(*CustomizedError); ok {
		otherDetails = ce.Error()
	} else if e.wrap != nil {
		otherDetails = fmt.Sprint("\"", e.wrap.Error(), "\"")
	}
	return fmt.Sprintf(`{"trace":"%s","code":%d,"msg":"%s","error":"%v","wrapd":%s}`, strings.Join(e.trace, "->"), e.code, e.message, e.cause, otherDetails)
}
