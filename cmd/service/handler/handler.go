package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/learnkeep/learnkeep/app/core"
	"github.com/learnkeep/learnkeep/app/response"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

// localizeKey resolves an i18n message key for the request language,
// used for the non-blocking warnings that ride on success responses.
func localizeKey(c *gin.Context, key string) string {
	if key == "" {
		return ""
	}
	l := response.InjectResponseLocalizer(c)
	return l.Get(response.GetLangFromRequestOrDefault(c), key)
}
