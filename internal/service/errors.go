package service

import "errors"

// 服务层统一错误，由 handler 映射为业务状态码和多语言文案
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidInput         = errors.New("invalid input")
	ErrCheckoutInProgress   = errors.New("checkout already in progress")
	ErrOrderStoreFailed     = errors.New("order could not be stored")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("order status transition not allowed")
	ErrPasswordInvalid      = errors.New("password invalid")
	ErrRemoteUnavailable    = errors.New("remote store unavailable")
	ErrNotificationDisabled = errors.New("telegram notification not configured")
)

// ValidationError 表单校验错误，携带字段名和文案键
type ValidationError struct {
	Field string
	Key   string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Field
}

// ValidationErrors 多字段校验错误集合
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msg := "validation failed:"
	for _, item := range e {
		msg += " " + item.Field
	}
	return msg
}
