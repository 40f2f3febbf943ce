package admin

import (
	"github.com/myshop-next/internal/http/handlers/shared"
	"github.com/myshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 管理员登录请求
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login 管理员登录，返回 Bearer Token
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	token, expiresAt, err := h.AuthService.Login(c.Request.Context(), req.Password, c.ClientIP())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt.Unix(),
	})
}

// Logout 管理员登出，吊销当前令牌
func (h *Handler) Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")
	if err := h.AuthService.Logout(c.Request.Context(), tokenID); err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"logout": true})
}
