package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL          = "error.internal"
	ERROR_NOT_FOUND         = "error.notfound"
	ERROR_INVALIDARGUMENT   = "error.invalidargument"
	ERROR_MORE_THAN_MAX     = "error.moreThanMax"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"

	WARNING_UPLOAD_FAILED = "warning.upload.failed"
)
