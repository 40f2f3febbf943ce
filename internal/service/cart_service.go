package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/models"
)

const cartSweepInterval = 5 * time.Minute

// CartLine 购物车行。加入时对商品做值拷贝定格，
// 之后目录改价、下架、删除都不影响已在购物车里的行。
type CartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal models.Money   `json:"subtotal"`
}

// CartDetail 购物车详情
type CartDetail struct {
	Items     []CartItemDetail `json:"items"`
	ItemCount int              `json:"item_count"`
	Total     models.Money     `json:"total"`
}

type sessionCart struct {
	lines     []CartLine
	updatedAt time.Time
}

// CartService 购物车服务。
// 购物车按会话 ID 存内存，超过 TTL 未活动的会话由后台清扫释放；
// 购物车不落库，进程重启即清空。
type CartService struct {
	catalog *CatalogService

	mu    sync.Mutex
	carts map[string]*sessionCart
	ttl   time.Duration
}

// NewCartService 创建购物车服务
func NewCartService(catalog *CatalogService, ttl time.Duration) *CartService {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &CartService{
		catalog: catalog,
		carts:   make(map[string]*sessionCart),
		ttl:     ttl,
	}
}

// Get 获取购物车详情，按加入时定格的商品快照计价
func (s *CartService) Get(sessionID string) (*CartDetail, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}
	s.mu.Lock()
	cart, ok := s.carts[sessionID]
	var lines []CartLine
	if ok {
		cart.updatedAt = time.Now()
		lines = append(lines, cart.lines...)
	}
	s.mu.Unlock()

	return s.buildDetail(lines), nil
}

// AddItem 添加商品到购物车；已存在时数量累加
func (s *CartService) AddItem(sessionID, productID string, quantity int) (*CartDetail, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(productID) == "" {
		return nil, ErrInvalidInput
	}
	if quantity <= 0 {
		quantity = 1
	}
	product, err := s.catalog.ByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrProductNotFound
	}

	s.mu.Lock()
	cart := s.ensureCartLocked(sessionID)
	found := false
	for i := range cart.lines {
		if cart.lines[i].Product.ID == productID {
			cart.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.lines = append(cart.lines, CartLine{Product: *product, Quantity: quantity})
	}
	lines := append([]CartLine(nil), cart.lines...)
	s.mu.Unlock()

	return s.buildDetail(lines), nil
}

// UpdateQuantity 设定购物车行数量；数量为 0 等价于移除该行
func (s *CartService) UpdateQuantity(sessionID, productID string, quantity int) (*CartDetail, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(productID) == "" {
		return nil, ErrInvalidInput
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.RemoveItem(sessionID, productID)
	}

	s.mu.Lock()
	cart := s.ensureCartLocked(sessionID)
	found := false
	for i := range cart.lines {
		if cart.lines[i].Product.ID == productID {
			cart.lines[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return nil, ErrProductNotFound
	}
	lines := append([]CartLine(nil), cart.lines...)
	s.mu.Unlock()

	return s.buildDetail(lines), nil
}

// RemoveItem 移除购物车行
func (s *CartService) RemoveItem(sessionID, productID string) (*CartDetail, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(productID) == "" {
		return nil, ErrInvalidInput
	}
	s.mu.Lock()
	cart := s.ensureCartLocked(sessionID)
	for i := range cart.lines {
		if cart.lines[i].Product.ID == productID {
			cart.lines = append(cart.lines[:i], cart.lines[i+1:]...)
			break
		}
	}
	lines := append([]CartLine(nil), cart.lines...)
	s.mu.Unlock()

	return s.buildDetail(lines), nil
}

// Clear 清空购物车
func (s *CartService) Clear(sessionID string) {
	if strings.TrimSpace(sessionID) == "" {
		return
	}
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
}

// Snapshot 取出当前购物车行（下单时定格商品快照用）
func (s *CartService) Snapshot(sessionID string) []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionID]
	if !ok {
		return nil
	}
	return append([]CartLine(nil), cart.lines...)
}

// StartSweeper 启动后台清扫，ctx 取消后退出
func (s *CartService) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(cartSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *CartService) sweep() {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	swept := 0
	for id, cart := range s.carts {
		if cart.updatedAt.Before(cutoff) {
			delete(s.carts, id)
			swept++
		}
	}
	remaining := len(s.carts)
	s.mu.Unlock()
	if swept > 0 {
		logger.Infow("cart_sessions_swept", "swept", swept, "remaining", remaining)
	}
}

func (s *CartService) ensureCartLocked(sessionID string) *sessionCart {
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &sessionCart{}
		s.carts[sessionID] = cart
	}
	cart.updatedAt = time.Now()
	return cart
}

// buildDetail 根据加入时定格的行快照计算购物车详情
func (s *CartService) buildDetail(lines []CartLine) *CartDetail {
	detail := &CartDetail{Items: []CartItemDetail{}}
	total := decimal.Zero
	for _, line := range lines {
		subtotal := line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		detail.Items = append(detail.Items, CartItemDetail{
			Product:  line.Product,
			Quantity: line.Quantity,
			Subtotal: models.NewMoneyFromDecimal(subtotal),
		})
		detail.ItemCount += line.Quantity
		total = total.Add(subtotal)
	}
	detail.Total = models.NewMoneyFromDecimal(total)
	return detail
}
