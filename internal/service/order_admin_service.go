package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/models"
	"github.com/myshop-next/internal/repository"
	"github.com/myshop-next/internal/store"
)

// allowedTransitions 订单状态流转表
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusDelivering: true,
		constants.OrderStatusCancelled:  true,
	},
	constants.OrderStatusDelivering: {
		constants.OrderStatusCompleted: true,
		constants.OrderStatusCancelled: true,
	},
}

var validStatuses = map[string]bool{
	constants.OrderStatusPending:    true,
	constants.OrderStatusConfirmed:  true,
	constants.OrderStatusDelivering: true,
	constants.OrderStatusCompleted:  true,
	constants.OrderStatusCancelled:  true,
}

// CanTransition 判断状态流转是否允许
func CanTransition(current, target string) bool {
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

// OrderOverview 管理端总览数据
type OrderOverview struct {
	TotalOrders   int          `json:"total_orders"`
	PendingOrders int          `json:"pending_orders"`
	TotalRevenue  models.Money `json:"total_revenue"`
	TodayOrders   int          `json:"today_orders"`
}

// OrderAdminService 管理端订单服务。
// 列表和总览以远程为准，远程不可用时回退本地镜像；
// 写操作先写远程，成功后同步镜像。
type OrderAdminService struct {
	remote store.OrderStore
	mirror repository.OrderMirrorRepository
	loc    *time.Location
}

// NewOrderAdminService 创建管理端订单服务
func NewOrderAdminService(remote store.OrderStore, mirror repository.OrderMirrorRepository) *OrderAdminService {
	return &OrderAdminService{remote: remote, mirror: mirror, loc: shopLocation()}
}

// shopLocation 店铺所在时区，加载失败时退回 UTC
func shopLocation() *time.Location {
	loc, err := time.LoadLocation(constants.ShopTimezone)
	if err != nil {
		logger.Warnw("shop_timezone_load_failed", "timezone", constants.ShopTimezone, "error", err)
		return time.UTC
	}
	return loc
}

// startOfDay 给定时刻在指定时区的当日零点
func startOfDay(at time.Time, loc *time.Location) time.Time {
	local := at.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// List 返回全部订单，按下单时间倒序
func (s *OrderAdminService) List(ctx context.Context) ([]models.Order, error) {
	if s.remote != nil {
		orders, err := s.remote.List(ctx)
		if err == nil {
			return orders, nil
		}
		logger.Warnw("admin_orders_remote_failed", "error", err, "fallback", "local_mirror")
	}
	return s.listFromMirror()
}

func (s *OrderAdminService) listFromMirror() ([]models.Order, error) {
	if s.mirror == nil {
		return nil, ErrRemoteUnavailable
	}
	cached, err := s.mirror.List()
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(cached))
	for i := range cached {
		order, err := cached[i].ToOrder()
		if err != nil {
			logger.Warnw("admin_order_mirror_decode_failed", "order_number", cached[i].OrderNumber, "error", err)
			continue
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// Get 按远程 ID 查询订单
func (s *OrderAdminService) Get(ctx context.Context, id string) (*models.Order, error) {
	if s.remote != nil {
		order, err := s.remote.Get(ctx, id)
		if err == nil {
			return order, nil
		}
		if err == store.ErrNotFound {
			return nil, ErrOrderNotFound
		}
		logger.Warnw("admin_order_remote_failed", "order_id", id, "error", err)
	}
	if s.mirror != nil {
		cached, err := s.mirror.GetByRemoteID(id)
		if err == nil && cached != nil {
			return cached.ToOrder()
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateStatus 更新订单状态，按状态流转表校验
func (s *OrderAdminService) UpdateStatus(ctx context.Context, id, target string) (*models.Order, error) {
	if !validStatuses[target] {
		return nil, ErrInvalidStatus
	}
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == target {
		return order, nil
	}
	if !CanTransition(order.Status, target) {
		return nil, ErrInvalidTransition
	}
	if s.remote == nil {
		return nil, ErrRemoteUnavailable
	}
	if err := s.remote.UpdateStatus(ctx, id, target); err != nil {
		if err == store.ErrNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if s.mirror != nil {
		if err := s.mirror.UpdateStatus(id, target); err != nil {
			logger.Warnw("order_status_mirror_failed", "order_id", id, "error", err)
		}
	}
	logger.Infow("order_status_updated", "order_id", id, "from", order.Status, "to", target)
	order.Status = target
	return order, nil
}

// Delete 删除单个订单
func (s *OrderAdminService) Delete(ctx context.Context, id string) error {
	if s.remote == nil {
		return ErrRemoteUnavailable
	}
	if err := s.remote.Delete(ctx, id); err != nil && err != store.ErrNotFound {
		return err
	}
	if s.mirror != nil {
		if err := s.mirror.DeleteByRemoteID(id); err != nil {
			logger.Warnw("order_delete_mirror_failed", "order_id", id, "error", err)
		}
	}
	logger.Infow("order_deleted", "order_id", id)
	return nil
}

// DeleteAll 清空全部订单，返回删除的订单数
func (s *OrderAdminService) DeleteAll(ctx context.Context) (int, error) {
	if s.remote == nil {
		return 0, ErrRemoteUnavailable
	}
	deleted, err := s.remote.DeleteAll(ctx)
	if err != nil {
		return deleted, err
	}
	if s.mirror != nil {
		if err := s.mirror.DeleteAll(); err != nil {
			logger.Warnw("orders_clear_mirror_failed", "error", err)
		}
	}
	logger.Infow("orders_cleared", "deleted", deleted)
	return deleted, nil
}

// Overview 统计总览：订单总数、待处理数、今日订单数、营收（剔除已取消）
func (s *OrderAdminService) Overview(ctx context.Context) (*OrderOverview, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	overview := &OrderOverview{}
	revenue := decimal.Zero
	todayStart := startOfDay(time.Now(), s.loc)
	for _, order := range orders {
		overview.TotalOrders++
		if order.Status == constants.OrderStatusPending {
			overview.PendingOrders++
		}
		if order.Status != constants.OrderStatusCancelled {
			revenue = revenue.Add(order.Total.Decimal)
		}
		if !order.CreatedAt.Before(todayStart) {
			overview.TodayOrders++
		}
	}
	overview.TotalRevenue = models.NewMoneyFromDecimal(revenue)
	return overview, nil
}

// ExportCSV 导出订单清单
func (s *OrderAdminService) ExportCSV(ctx context.Context) ([]byte, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"Order #", "Customer", "Phone", "Address", "Total", "Payment", "Status", "Date"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, order := range orders {
		label := order.PaymentMethod
		if display, ok := constants.PaymentMethodLabels[order.PaymentMethod]; ok {
			label = display
		}
		record := []string{
			order.OrderNumber,
			order.CustomerName,
			order.Phone,
			order.Address,
			strconv.FormatFloat(order.Total.Float64(), 'f', 2, 64),
			label,
			order.Status,
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
