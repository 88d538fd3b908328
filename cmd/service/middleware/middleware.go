package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/learnkeep/learnkeep/app/response"
	"github.com/learnkeep/learnkeep/pkg/errors"
	"github.com/learnkeep/learnkeep/pkg/i18n"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

var (
	limiters   = make(map[string]*rate.Limiter)
	limitersMu sync.Mutex
)

// UseLimit applies a per-key rate limit, limit being the number of
// requests allowed per minute for each key genKeyFunc produces.
func UseLimit(operation string, limit int, genKeyFunc func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := operation + ":" + genKeyFunc(c)

		limitersMu.Lock()
		l, exist := limiters[key]
		if !exist {
			l = rate.NewLimiter(rate.Every(time.Minute/time.Duration(limit)), limit*2)
			limiters[key] = l
		}
		limitersMu.Unlock()

		if !l.Allow() {
			response.APIError(c, errors.New("middleware.UseLimit."+operation, i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
			return
		}
		c.Next()
	}
}
