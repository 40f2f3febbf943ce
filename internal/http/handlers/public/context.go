package public

import (
	"strings"

	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/http/handlers/shared"
	"github.com/myshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// getSessionID 读取购物车会话标识，缺失时返回 false 并已写出错误响应
func getSessionID(c *gin.Context) (string, bool) {
	sessionID := strings.TrimSpace(c.GetHeader(constants.HeaderSessionID))
	if sessionID == "" {
		shared.RespondError(c, response.CodeBadRequest, "error.session_missing", nil)
		return "", false
	}
	return sessionID, true
}
