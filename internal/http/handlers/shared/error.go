package shared

import (
	"errors"

	"github.com/myshop-next/internal/http/response"
	"github.com/myshop-next/internal/i18n"
	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	msg := i18n.T(locale, key)
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondServiceError 把服务层错误映射为业务状态码和多语言文案。
func RespondServiceError(c *gin.Context, err error) {
	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		RespondValidationErrors(c, verrs)
		return
	}
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		RespondError(c, response.CodeNotFound, "error.product_not_found", nil)
	case errors.Is(err, service.ErrOrderNotFound):
		RespondError(c, response.CodeNotFound, "error.order_not_found", nil)
	case errors.Is(err, service.ErrCartEmpty):
		RespondError(c, response.CodeBadRequest, "error.cart_empty", nil)
	case errors.Is(err, service.ErrInvalidQuantity):
		RespondError(c, response.CodeBadRequest, "error.quantity_invalid", nil)
	case errors.Is(err, service.ErrInvalidInput):
		RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
	case errors.Is(err, service.ErrCheckoutInProgress):
		RespondError(c, response.CodeConflict, "error.checkout_in_progress", nil)
	case errors.Is(err, service.ErrOrderStoreFailed):
		RespondError(c, response.CodeUnavailable, "error.order_store_failed", err)
	case errors.Is(err, service.ErrInvalidStatus):
		RespondError(c, response.CodeBadRequest, "error.status_invalid", nil)
	case errors.Is(err, service.ErrInvalidTransition):
		RespondError(c, response.CodeBadRequest, "error.transition_invalid", nil)
	case errors.Is(err, service.ErrPasswordInvalid):
		RespondError(c, response.CodeUnauthorized, "error.password_invalid", nil)
	case errors.Is(err, service.ErrRemoteUnavailable):
		RespondError(c, response.CodeUnavailable, "error.remote_unavailable", err)
	default:
		RespondError(c, response.CodeInternal, "error.internal", err)
	}
}

// RespondValidationErrors 返回逐字段的校验错误。
func RespondValidationErrors(c *gin.Context, verrs service.ValidationErrors) {
	locale := i18n.ResolveLocale(c)
	fields := gin.H{}
	for _, verr := range verrs {
		fields[verr.Field] = i18n.T(locale, verr.Key)
	}
	msg := i18n.T(locale, "error.validation_failed")
	response.ErrorWithData(c, response.CodeBadRequest, msg, gin.H{"fields": fields})
}
