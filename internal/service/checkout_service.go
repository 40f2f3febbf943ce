package service

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/models"
	"github.com/myshop-next/internal/queue"
	"github.com/myshop-next/internal/repository"
	"github.com/myshop-next/internal/store"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s]{8,}$`)

// CheckoutInput 下单输入
type CheckoutInput struct {
	SessionID        string
	CustomerName     string
	Phone            string
	Address          string
	DeliveryLocation string
	Notes            string
	PaymentMethod    string
}

// CheckoutService 下单服务。
// 同一会话同一时刻只允许一次提交；校验不通过不产生任何写入；
// 远程写入失败时重试一次，仍失败则保留购物车原样返回错误。
type CheckoutService struct {
	cart     *CartService
	remote   store.OrderStore
	mirror   repository.OrderMirrorRepository
	queue    *queue.Client
	notifier *NotificationService

	mu         sync.Mutex
	submitting map[string]bool
}

// NewCheckoutService 创建下单服务
func NewCheckoutService(cart *CartService, remote store.OrderStore, mirror repository.OrderMirrorRepository, queueClient *queue.Client, notifier *NotificationService) *CheckoutService {
	return &CheckoutService{
		cart:       cart,
		remote:     remote,
		mirror:     mirror,
		queue:      queueClient,
		notifier:   notifier,
		submitting: make(map[string]bool),
	}
}

// Submit 提交订单
func (s *CheckoutService) Submit(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidInput
	}

	// 会话级互斥：重复点击提交直接拒绝
	s.mu.Lock()
	if s.submitting[sessionID] {
		s.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	s.submitting[sessionID] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.submitting, sessionID)
		s.mu.Unlock()
	}()

	if errs := ValidateCheckout(input); len(errs) > 0 {
		return nil, errs
	}

	detail, err := s.cart.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if len(detail.Items) == 0 {
		return nil, ErrCartEmpty
	}

	order := buildOrder(input, detail)
	if s.remote == nil {
		return nil, ErrRemoteUnavailable
	}

	id, err := s.remote.Create(ctx, order)
	if err != nil {
		logger.Warnw("order_create_retry", "order_number", order.OrderNumber, "error", err)
		id, err = s.remote.Create(ctx, order)
	}
	if err != nil {
		logger.Errorw("order_create_failed", "order_number", order.OrderNumber, "error", err)
		return nil, ErrOrderStoreFailed
	}
	order.ID = id

	s.mirrorOrder(order)
	s.cart.Clear(sessionID)

	logger.Infow("order_created",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"total", order.Total.String(),
		"item_count", order.ItemCount(),
	)

	s.dispatchNotify(ctx, order)
	return order, nil
}

// ValidateCheckout 校验下单表单，返回全部未通过的字段
func ValidateCheckout(input CheckoutInput) ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(input.CustomerName) == "" {
		errs = append(errs, &ValidationError{Field: "customer_name", Key: "error.customer_name_required"})
	}
	phone := strings.TrimSpace(input.Phone)
	if phone == "" || !phonePattern.MatchString(phone) {
		errs = append(errs, &ValidationError{Field: "phone", Key: "error.phone_invalid"})
	}
	if strings.TrimSpace(input.Address) == "" {
		errs = append(errs, &ValidationError{Field: "address", Key: "error.address_required"})
	}
	if _, ok := constants.PaymentMethodLabels[input.PaymentMethod]; !ok {
		errs = append(errs, &ValidationError{Field: "payment_method", Key: "error.payment_invalid"})
	}
	return errs
}

// buildOrder 把购物车行快照落成订单条目，价格沿用加入购物车时的定格价
func buildOrder(input CheckoutInput, detail *CartDetail) *models.Order {
	items := make([]models.OrderItem, 0, len(detail.Items))
	total := decimal.Zero
	for _, item := range detail.Items {
		items = append(items, models.OrderItem{
			ProductID: item.Product.ID,
			Title:     item.Product.Title,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Sizes:     item.Product.Sizes,
			Colors:    item.Product.Colors,
			ImageURL:  item.Product.ImageURL,
			Images:    item.Product.Images,
		})
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	location := strings.TrimSpace(input.DeliveryLocation)
	if location == "" {
		location = constants.StockLocationMyanmar
	}
	return &models.Order{
		OrderNumber:      GenerateOrderNumber(),
		CustomerName:     strings.TrimSpace(input.CustomerName),
		Phone:            strings.TrimSpace(input.Phone),
		Address:          strings.TrimSpace(input.Address),
		DeliveryLocation: location,
		Notes:            strings.TrimSpace(input.Notes),
		Items:            items,
		Total:            models.NewMoneyFromDecimal(total),
		PaymentMethod:    input.PaymentMethod,
		Status:           constants.OrderStatusPending,
		TelegramSent:     false,
		CreatedAt:        time.Now(),
	}
}

// mirrorOrder 远程写入成功后落一份本地镜像，失败只记日志
func (s *CheckoutService) mirrorOrder(order *models.Order) {
	if s.mirror == nil {
		return
	}
	cached, err := models.NewCachedOrder(order)
	if err != nil {
		logger.Warnw("order_mirror_encode_failed", "order_number", order.OrderNumber, "error", err)
		return
	}
	if err := s.mirror.Save(cached); err != nil {
		logger.Warnw("order_mirror_write_failed", "order_number", order.OrderNumber, "error", err)
	}
}

// dispatchNotify 推送通知任务；队列不可用时降级为进程内异步发送
func (s *CheckoutService) dispatchNotify(ctx context.Context, order *models.Order) {
	if s.queue.Enabled() {
		err := s.queue.EnqueueOrderNotify(queue.OrderNotifyPayload{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
		})
		if err == nil {
			return
		}
		logger.Warnw("order_notify_enqueue_failed", "order_number", order.OrderNumber, "error", err)
	}
	if s.notifier == nil {
		return
	}
	go func(o models.Order) {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.notifier.NotifyNewOrder(notifyCtx, &o); err != nil {
			logger.Warnw("order_notify_inline_failed", "order_number", o.OrderNumber, "error", err)
		}
	}(*order)
}
