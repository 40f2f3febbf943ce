package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/myshop-next/internal/http/handlers/shared"
	"github.com/myshop-next/internal/http/response"
	"github.com/myshop-next/internal/i18n"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 订单状态更新请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders 订单列表，按下单时间倒序
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.OrderAdminService.List(c.Request.Context())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"orders": orders})
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.OrderAdminService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatus 更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, err := h.OrderAdminService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// DeleteOrder 删除单个订单
func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.OrderAdminService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	msg := i18n.T(i18n.ResolveLocale(c), "msg.order_deleted")
	response.SuccessWithMsg(c, msg, gin.H{"deleted": true})
}

// DeleteAllOrders 清空全部订单
func (h *Handler) DeleteAllOrders(c *gin.Context) {
	deleted, err := h.OrderAdminService.DeleteAll(c.Request.Context())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	msg := i18n.T(i18n.ResolveLocale(c), "msg.orders_cleared")
	response.SuccessWithMsg(c, msg, gin.H{"deleted": deleted})
}

// ExportOrdersCSV 导出订单 CSV 文件
func (h *Handler) ExportOrdersCSV(c *gin.Context) {
	data, err := h.OrderAdminService.ExportCSV(c.Request.Context())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// GetOverview 管理端统计总览
func (h *Handler) GetOverview(c *gin.Context) {
	overview, err := h.OrderAdminService.Overview(c.Request.Context())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, overview)
}
