package response

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/learnkeep/learnkeep/pkg/errors"
	"github.com/learnkeep/learnkeep/pkg/i18n"
)

func ProvideResponseLocalizer(l i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("i18n", l)
	}
}

func InjectResponseLocalizer(c *gin.Context) i18n.Localizer {
	return c.MustGet("i18n").(i18n.Localizer)
}

const (
	ResponseKey = "response_key"
)

// Response 响应结构体定义
type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data"`
}

// Meta 响应meta定义
type Meta struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func GetLangFromRequestOrDefault(c *gin.Context) string {
	lang := c.Request.Header.Get("Accept-Language")
	if lang == "zh" {
		lang = "zh-CN"
	}
	if i18n.ALLOW_LANG[lang] {
		return lang
	}
	return i18n.DEFAULT_LANG
}

// APIError api响应失败
func APIError(c *gin.Context, err error) {
	c.Abort()
	l := InjectResponseLocalizer(c)

	res := c.MustGet(ResponseKey).(*Response)
	var httpStatus int
	if cerrptr, ok := err.(*errors.CustomizedError); !ok {
		res.Meta.Code = http.StatusInternalServerError
		res.Meta.Message = err.Error()
		httpStatus = res.Meta.Code
	} else {
		res.Meta.Code = cerrptr.GetCode()
		lang := GetLangFromRequestOrDefault(c)
		res.Meta.Message = l.Get(lang, cerrptr.Message())
		httpStatus = cerrptr.GetCode()
		// validation failures carry the field-keyed messages
		if data := cerrptr.GetData(); len(data) > 0 {
			res.Data = data
		}
	}

	c.JSON(httpStatus, res)
	printErrorLog(c, res, err)
}

func printErrorLog(c *gin.Context, res *Response, err error) {
	var logFields = map[string]any{
		"request_uri": c.Request.URL.Path,
		"end_time":    time.Now().Unix(),
		"code":        res.Meta.Code,
		"request_id":  res.Meta.RequestID,
		"error":       err.Error(),
	}
	slog.Error("response error", slog.Any("fields", logFields))
}

func printSuccessLog(c *gin.Context, res *Response) {
	var logFields = map[string]any{
		"request_uri": c.Request.URL.Path,
		"end_time":    time.Now().Unix(),
		"request_id":  res.Meta.RequestID,
		"params":      c.Request.URL.Query().Encode(),
	}
	slog.Info("request success", slog.Any("fields", logFields))
}

// APISuccess api响应成功
func APISuccess(c *gin.Context, response interface{}) {
	c.Abort()
	res := c.MustGet(ResponseKey).(*Response)
	if response != nil {
		res.Data = response
	}
	c.JSON(http.StatusOK, res)
	printSuccessLog(c, res)
}

// NewResponse injects the per-request response envelope.
func NewResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := &Response{
			Meta: Meta{
				RequestID: uuid.NewString(),
			},
		}
		c.Set(ResponseKey, resp)
	}
}
