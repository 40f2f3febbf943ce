package public

import (
	"github.com/myshop-next/internal/http/handlers/shared"
	"github.com/myshop-next/internal/http/response"
	"github.com/myshop-next/internal/i18n"
	"github.com/myshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 下单请求
type CheckoutRequest struct {
	CustomerName     string `json:"customer_name"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	DeliveryLocation string `json:"delivery_location"`
	Notes            string `json:"notes"`
	PaymentMethod    string `json:"payment_method"`
}

// CreateOrder 提交订单
func (h *Handler) CreateOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, err := h.CheckoutService.Submit(c.Request.Context(), service.CheckoutInput{
		SessionID:        sessionID,
		CustomerName:     req.CustomerName,
		Phone:            req.Phone,
		Address:          req.Address,
		DeliveryLocation: req.DeliveryLocation,
		Notes:            req.Notes,
		PaymentMethod:    req.PaymentMethod,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	msg := i18n.T(i18n.ResolveLocale(c), "msg.order_created")
	response.SuccessWithMsg(c, msg, order)
}

// GetInvoice 按订单编号查询订单（发票页）
func (h *Handler) GetInvoice(c *gin.Context) {
	order, err := h.InvoiceService.GetByOrderNumber(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}
