package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/models"
	"github.com/myshop-next/internal/repository"
	"github.com/myshop-next/internal/store"
)

const messageDivider = "━━━━━━━━━━━━━━━━━━━━━━"

// NotificationService 新订单通知服务。
// 渲染缅文订单摘要并通过 Telegram Bot 发给店主，
// 发送成功后把订单的 telegram_sent 标记翻为 true（尽力而为）。
type NotificationService struct {
	settings *SettingService
	sender   TelegramSender
	orders   store.OrderStore
	mirror   repository.OrderMirrorRepository
}

// NewNotificationService 创建通知服务
func NewNotificationService(settings *SettingService, sender TelegramSender, orders store.OrderStore, mirror repository.OrderMirrorRepository) *NotificationService {
	return &NotificationService{
		settings: settings,
		sender:   sender,
		orders:   orders,
		mirror:   mirror,
	}
}

// NotifyNewOrder 发送新订单通知
func (s *NotificationService) NotifyNewOrder(ctx context.Context, order *models.Order) error {
	if order == nil {
		return ErrInvalidInput
	}
	botToken, chatID := s.settings.TelegramTarget(ctx)
	if botToken == "" || chatID == "" {
		logger.Infow("order_notify_skipped", "order_number", order.OrderNumber, "reason", "telegram_not_configured")
		return ErrNotificationDisabled
	}

	message := RenderOrderMessage(order)
	if err := s.sender.SendMessage(ctx, botToken, chatID, message); err != nil {
		logger.Warnw("order_notify_send_failed", "order_number", order.OrderNumber, "error", err)
		return err
	}

	logger.Infow("order_notify_sent", "order_number", order.OrderNumber)
	s.markSent(ctx, order)
	return nil
}

// NotifyByOrderID 按订单 ID 查单并发送通知（队列消费端入口）
func (s *NotificationService) NotifyByOrderID(ctx context.Context, orderID string) error {
	order, err := s.lookupOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.TelegramSent {
		logger.Infow("order_notify_skipped", "order_id", orderID, "reason", "already_sent")
		return nil
	}
	return s.NotifyNewOrder(ctx, order)
}

func (s *NotificationService) lookupOrder(ctx context.Context, orderID string) (*models.Order, error) {
	if s.orders != nil {
		order, err := s.orders.Get(ctx, orderID)
		if err == nil {
			return order, nil
		}
		if err != store.ErrNotFound {
			logger.Warnw("order_notify_lookup_failed", "order_id", orderID, "error", err)
		}
	}
	if s.mirror != nil {
		cached, err := s.mirror.GetByRemoteID(orderID)
		if err == nil && cached != nil {
			return cached.ToOrder()
		}
	}
	return nil, ErrOrderNotFound
}

// markSent 翻转 telegram_sent 标记，失败不影响通知结果
func (s *NotificationService) markSent(ctx context.Context, order *models.Order) {
	order.TelegramSent = true
	if s.orders != nil && order.ID != "" {
		if err := s.orders.SetTelegramSent(ctx, order.ID, true); err != nil {
			logger.Warnw("order_notify_mark_failed", "order_id", order.ID, "error", err)
		}
	}
	if s.mirror != nil && order.ID != "" {
		if err := s.mirror.SetTelegramSent(order.ID, true); err != nil {
			logger.Warnw("order_notify_mirror_mark_failed", "order_id", order.ID, "error", err)
		}
	}
}

// RenderOrderMessage 渲染发给店主的缅文订单摘要
func RenderOrderMessage(order *models.Order) string {
	var itemLines []string
	for _, item := range order.Items {
		itemLines = append(itemLines, fmt.Sprintf("• %s × %d ခု = %s",
			item.Title, item.Quantity, FormatMMK(item.Subtotal())))
	}

	paymentLabel := order.PaymentMethod
	if label, ok := constants.PaymentMethodLabels[order.PaymentMethod]; ok {
		paymentLabel = label
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛍️ အော်ဒါအသစ် — #%s\n", order.OrderNumber)
	b.WriteString(messageDivider + "\n")
	fmt.Fprintf(&b, "👤 ဖောက်သည် — %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📱 ဖုန်း — %s\n", order.Phone)
	fmt.Fprintf(&b, "📍 လိပ်စာ — %s\n", order.Address)
	if order.Notes != "" {
		fmt.Fprintf(&b, "💬 မှတ်ချက် — %s\n", order.Notes)
	}
	b.WriteString(messageDivider + "\n")
	b.WriteString("🛒 မှာယူသည့် ပစ္စည်းများ —\n")
	b.WriteString(strings.Join(itemLines, "\n") + "\n")
	b.WriteString(messageDivider + "\n")
	fmt.Fprintf(&b, "💰 စုစုပေါင်း — %s\n", FormatMMK(order.Total))
	fmt.Fprintf(&b, "💳 ငွေပေးချေမှု — %s\n", paymentLabel)
	fmt.Fprintf(&b, "⏰ %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(messageDivider + "\n")
	if order.PaymentMethod != constants.PaymentMethodCOD {
		b.WriteString("📸 ငွေလွှဲ screenshot ပို့ပေးပါ။")
	} else {
		b.WriteString("🚪 တံခါးအရောင်း (COD)")
	}
	return b.String()
}
