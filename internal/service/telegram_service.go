package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramSender Telegram 消息发送接口
type TelegramSender interface {
	SendMessage(ctx context.Context, botToken, chatID, text string) error
}

// TelegramService Bot API 客户端（只用到 sendMessage 一个方法）
type TelegramService struct {
	httpClient *http.Client
	apiBase    string
}

// NewTelegramService 创建 Telegram 客户端
func NewTelegramService(timeout time.Duration) *TelegramService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TelegramService{
		httpClient: &http.Client{Timeout: timeout},
		apiBase:    telegramAPIBase,
	}
}

type telegramSendRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type telegramSendResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage 调用 Bot API 发送文本消息
func (s *TelegramService) SendMessage(ctx context.Context, botToken, chatID, text string) error {
	if botToken == "" || chatID == "" {
		return ErrNotificationDisabled
	}
	payload, err := json.Marshal(telegramSendRequest{ChatID: chatID, Text: text})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var result telegramSendResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("telegram response status %d: %w", resp.StatusCode, err)
	}
	if !result.OK {
		return fmt.Errorf("telegram send failed: %s", result.Description)
	}
	return nil
}
