package service

import (
	"context"
	"strings"

	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/models"
	"github.com/myshop-next/internal/repository"
	"github.com/myshop-next/internal/store"
)

// InvoiceService 发票查询服务。
// 按订单编号查询：远程命中直接返回；远程不可用或未命中时回退本地镜像。
type InvoiceService struct {
	remote store.OrderStore
	mirror repository.OrderMirrorRepository
}

// NewInvoiceService 创建发票查询服务
func NewInvoiceService(remote store.OrderStore, mirror repository.OrderMirrorRepository) *InvoiceService {
	return &InvoiceService{remote: remote, mirror: mirror}
}

// GetByOrderNumber 按订单编号查询订单
func (s *InvoiceService) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, ErrInvalidInput
	}

	if s.remote != nil {
		order, err := s.remote.GetByOrderNumber(ctx, orderNumber)
		if err == nil {
			return order, nil
		}
		if err != store.ErrNotFound {
			logger.Warnw("invoice_remote_lookup_failed", "order_number", orderNumber, "error", err)
		}
	}

	if s.mirror != nil {
		cached, err := s.mirror.GetByOrderNumber(orderNumber)
		if err != nil {
			logger.Warnw("invoice_mirror_lookup_failed", "order_number", orderNumber, "error", err)
		} else if cached != nil {
			order, err := cached.ToOrder()
			if err != nil {
				logger.Warnw("invoice_mirror_decode_failed", "order_number", orderNumber, "error", err)
			} else {
				return order, nil
			}
		}
	}

	return nil, ErrOrderNotFound
}
