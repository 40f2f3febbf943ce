package cache

import (
	"context"
	"fmt"
	"time"
)

const adminSessionTTLMargin = 5 * time.Minute

// AdminSession 管理员登录会话快照
// 以 JWT 的 jti 为键写入 Redis，登出即删除，鉴权中间件据此判断令牌是否已吊销
type AdminSession struct {
	TokenID   string `json:"token_id"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresAt int64  `json:"expires_at"`
	ClientIP  string `json:"client_ip,omitempty"`
}

func adminSessionKey(tokenID string) string {
	return fmt.Sprintf("auth:admin:%s", tokenID)
}

// SetAdminSession 写入会话快照，TTL 略长于令牌有效期
func SetAdminSession(ctx context.Context, session *AdminSession) error {
	if session == nil || session.TokenID == "" {
		return nil
	}
	ttl := time.Until(time.Unix(session.ExpiresAt, 0)) + adminSessionTTLMargin
	if ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, adminSessionKey(session.TokenID), session, ttl)
}

// GetAdminSession 获取会话快照
func GetAdminSession(ctx context.Context, tokenID string) (*AdminSession, bool, error) {
	if tokenID == "" {
		return nil, false, nil
	}
	var session AdminSession
	hit, err := GetJSON(ctx, adminSessionKey(tokenID), &session)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &session, true, nil
}

// DelAdminSession 吊销会话
func DelAdminSession(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	return Del(ctx, adminSessionKey(tokenID))
}
