package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/myshop-next/internal/cache"
	"github.com/myshop-next/internal/config"
	"github.com/myshop-next/internal/logger"
)

// AuthService 管理端认证服务。
// 店铺共用一把管理密码（来自店铺设置，支持 bcrypt 哈希或明文），
// 登录成功后签发 HS256 JWT，并在 Redis 记录会话以支持登出吊销。
type AuthService struct {
	cfg      *config.Config
	settings *SettingService
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, settings *SettingService) *AuthService {
	return &AuthService{cfg: cfg, settings: settings}
}

// HashPassword 使用 bcrypt 加密密码
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 核对管理密码。
// 存储值形如 bcrypt 哈希时走 bcrypt 比对，否则做常数时间明文比对。
func (s *AuthService) VerifyPassword(stored, password string) bool {
	stored = strings.TrimSpace(stored)
	if stored == "" || password == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// JWTClaims JWT 声明
type JWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT 签发管理端 JWT
func (s *AuthService) GenerateJWT() (token string, tokenID string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(time.Duration(s.cfg.JWT.ExpireHours) * time.Hour)
	tokenID = uuid.NewString()

	claims := JWTClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", "", time.Time{}, err
	}
	return signed, tokenID, expiresAt, nil
}

// ParseJWT 解析管理端 JWT
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Login 管理员登录，密码正确则签发 JWT 并写入会话
func (s *AuthService) Login(ctx context.Context, password, clientIP string) (string, time.Time, error) {
	stored := s.settings.GetAdminPassword(ctx)
	if !s.VerifyPassword(stored, password) {
		logger.Warnw("admin_login_failed", "client_ip", clientIP)
		return "", time.Time{}, ErrPasswordInvalid
	}

	token, tokenID, expiresAt, err := s.GenerateJWT()
	if err != nil {
		return "", time.Time{}, err
	}

	if err := cache.SetAdminSession(ctx, &cache.AdminSession{
		TokenID:   tokenID,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
		ClientIP:  clientIP,
	}); err != nil {
		logger.Warnw("admin_session_write_failed", "error", err)
	}

	logger.Infow("admin_login", "client_ip", clientIP, "token_id", tokenID)
	return token, expiresAt, nil
}

// Logout 登出并吊销会话
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if err := cache.DelAdminSession(ctx, tokenID); err != nil {
		return err
	}
	logger.Infow("admin_logout", "token_id", tokenID)
	return nil
}
