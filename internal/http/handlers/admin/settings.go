package admin

import (
	"github.com/myshop-next/internal/http/handlers/shared"
	"github.com/myshop-next/internal/http/response"
	"github.com/myshop-next/internal/i18n"
	"github.com/myshop-next/internal/models"

	"github.com/gin-gonic/gin"
)

// SettingsRequest 店铺设置保存请求
type SettingsRequest struct {
	models.ShopSettings
	// AdminPassword 在 JSON 序列化中被抹掉，这里单独收一个可选字段
	AdminPassword string `json:"admin_password"`
}

// GetSettings 获取完整店铺设置（管理端可见凭据字段，密码除外）
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.SettingService.Get(c.Request.Context())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	out := *settings
	out.AdminPassword = ""
	response.Success(c, out)
}

// SaveSettings 保存店铺设置。
// admin_password 留空表示不修改密码。
func (h *Handler) SaveSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	current, err := h.SettingService.Get(c.Request.Context())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	settings := req.ShopSettings
	if req.AdminPassword != "" {
		hashed, err := h.AuthService.HashPassword(req.AdminPassword)
		if err != nil {
			shared.RespondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		settings.AdminPassword = hashed
	} else {
		settings.AdminPassword = current.AdminPassword
	}
	if err := h.SettingService.Save(c.Request.Context(), &settings); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	msg := i18n.T(i18n.ResolveLocale(c), "msg.settings_saved")
	out := settings
	out.AdminPassword = ""
	response.SuccessWithMsg(c, msg, out)
}
