package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/myshop-next/internal/config"
	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/models"
	"github.com/myshop-next/internal/repository"
	"github.com/myshop-next/internal/store"
)

// SettingService 店铺设置服务。
// 读取顺序：远程文档 -> 本地镜像 -> 内置默认值，远程读取成功时顺手刷新镜像。
type SettingService struct {
	remote      store.ConfigStore
	mirror      repository.SettingMirrorRepository
	fallbackPwd string
	tgFallback  config.TelegramConfig
}

// NewSettingService 创建店铺设置服务
func NewSettingService(remote store.ConfigStore, mirror repository.SettingMirrorRepository, fallbackPwd string, tgFallback config.TelegramConfig) *SettingService {
	return &SettingService{
		remote:      remote,
		mirror:      mirror,
		fallbackPwd: fallbackPwd,
		tgFallback:  tgFallback,
	}
}

// Get 获取店铺设置，远程缺失或出错时逐级回退
func (s *SettingService) Get(ctx context.Context) (*models.ShopSettings, error) {
	if s.remote != nil {
		settings, err := s.remote.GetShopSettings(ctx)
		if err == nil {
			merged := mergeSettings(settings)
			s.refreshMirror(merged)
			return merged, nil
		}
		if err != store.ErrNotFound {
			logger.Warnw("shop_settings_remote_failed", "error", err)
		}
	}

	if s.mirror != nil {
		cached, err := s.mirror.GetByKey(constants.ConfigDocShopSettings)
		if err != nil {
			logger.Warnw("shop_settings_mirror_failed", "error", err)
		} else if cached != nil {
			settings := models.DefaultShopSettings()
			if err := json.Unmarshal([]byte(cached.Value), &settings); err != nil {
				logger.Warnw("shop_settings_mirror_decode_failed", "error", err)
			} else {
				return &settings, nil
			}
		}
	}

	defaults := models.DefaultShopSettings()
	return &defaults, nil
}

// GetPublic 获取可对外公开的设置（抹掉凭据字段）
func (s *SettingService) GetPublic(ctx context.Context) (*models.ShopSettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	public := settings.Public()
	return &public, nil
}

// Save 保存店铺设置到远程文档并刷新镜像
func (s *SettingService) Save(ctx context.Context, settings *models.ShopSettings) error {
	if settings == nil {
		return ErrInvalidInput
	}
	if s.remote == nil {
		return ErrRemoteUnavailable
	}
	if err := s.remote.SaveShopSettings(ctx, settings); err != nil {
		return err
	}
	s.refreshMirror(settings)
	return nil
}

// GetAdminPassword 获取管理密码，设置为空时回退到配置值
func (s *SettingService) GetAdminPassword(ctx context.Context) string {
	settings, err := s.Get(ctx)
	if err == nil && strings.TrimSpace(settings.AdminPassword) != "" {
		return settings.AdminPassword
	}
	return s.fallbackPwd
}

// TelegramTarget 获取 Telegram 通知目标，设置优先，配置兜底
func (s *SettingService) TelegramTarget(ctx context.Context) (botToken, chatID string) {
	settings, err := s.Get(ctx)
	if err == nil {
		botToken = strings.TrimSpace(settings.TelegramBotToken)
		chatID = strings.TrimSpace(settings.TelegramChatID)
	}
	if botToken == "" {
		botToken = strings.TrimSpace(s.tgFallback.BotToken)
	}
	if chatID == "" {
		chatID = strings.TrimSpace(s.tgFallback.ChatID)
	}
	return botToken, chatID
}

func (s *SettingService) refreshMirror(settings *models.ShopSettings) {
	if s.mirror == nil || settings == nil {
		return
	}
	payload, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := s.mirror.Upsert(constants.ConfigDocShopSettings, string(payload)); err != nil {
		logger.Warnw("shop_settings_mirror_write_failed", "error", err)
	}
}

// mergeSettings 远程文档字段为空时用内置默认值补齐
func mergeSettings(remote *models.ShopSettings) *models.ShopSettings {
	defaults := models.DefaultShopSettings()
	if remote == nil {
		return &defaults
	}
	merged := *remote
	if strings.TrimSpace(merged.ShopName) == "" {
		merged.ShopName = defaults.ShopName
	}
	if strings.TrimSpace(merged.ShopTagline) == "" {
		merged.ShopTagline = defaults.ShopTagline
	}
	if strings.TrimSpace(merged.Slogan1) == "" {
		merged.Slogan1 = defaults.Slogan1
	}
	if strings.TrimSpace(merged.Slogan2) == "" {
		merged.Slogan2 = defaults.Slogan2
	}
	if strings.TrimSpace(merged.Slogan3) == "" {
		merged.Slogan3 = defaults.Slogan3
	}
	if strings.TrimSpace(merged.HeroSubtitle) == "" {
		merged.HeroSubtitle = defaults.HeroSubtitle
	}
	if strings.TrimSpace(merged.PhoneNumber) == "" {
		merged.PhoneNumber = defaults.PhoneNumber
	}
	if strings.TrimSpace(merged.ShopAddress) == "" {
		merged.ShopAddress = defaults.ShopAddress
	}
	if strings.TrimSpace(merged.KpayName) == "" {
		merged.KpayName = defaults.KpayName
	}
	if strings.TrimSpace(merged.WavepayName) == "" {
		merged.WavepayName = defaults.WavepayName
	}
	if strings.TrimSpace(merged.AyaName) == "" {
		merged.AyaName = defaults.AyaName
	}
	if strings.TrimSpace(merged.KbzName) == "" {
		merged.KbzName = defaults.KbzName
	}
	return &merged
}
