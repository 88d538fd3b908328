package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnkeep/learnkeep/app/core"
	"github.com/learnkeep/learnkeep/app/response"
	"github.com/learnkeep/learnkeep/cmd/service/handler"
	"github.com/learnkeep/learnkeep/cmd/service/middleware"
	"github.com/learnkeep/learnkeep/pkg/errors"
	"github.com/learnkeep/learnkeep/pkg/i18n"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := func(operation string, limit int) gin.HandlerFunc {
		return middleware.UseLimit(operation, limit, func(c *gin.Context) string {
			return c.ClientIP()
		})
	}

	s.Engine.Use(gin.Recovery())
	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)

	apiV1 := s.Engine.Group("/api/v1")
	{
		resources := apiV1.Group("/resources")
		{
			resources.GET("", s.ListResource)
			resources.GET("/:id", s.GetResource)
			resources.POST("", ipLimit("resource-write", 60), s.CreateResource)
			resources.PUT("/:id", ipLimit("resource-write", 60), s.UpdateResource)
			resources.DELETE("/:id", ipLimit("resource-write", 60), s.DeleteResource)
		}
	}

	s.Engine.NoRoute(func(c *gin.Context) {
		response.APIError(c, errors.New("router.NoRoute", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound))
	})
}
