package store

import (
	"context"
	"errors"

	"github.com/myshop-next/internal/models"
)

// ErrNotFound 远程文档不存在
var ErrNotFound = errors.New("store: document not found")

// ErrDisabled 远程库未配置
var ErrDisabled = errors.New("store: remote store disabled")

// ProductStore 商品远程集合
type ProductStore interface {
	// List 返回全部商品，按 created_at 倒序
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	// Create 写入新文档并返回远程生成的文档 ID
	Create(ctx context.Context, product *models.Product) (string, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// OrderStore 订单远程集合
type OrderStore interface {
	// List 返回全部订单，按 created_at 倒序
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	// Create 写入新订单并返回远程生成的文档 ID
	Create(ctx context.Context, order *models.Order) (string, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetTelegramSent(ctx context.Context, id string, sent bool) error
	Delete(ctx context.Context, id string) error
	// DeleteAll 清空订单集合，返回删除的文档数
	DeleteAll(ctx context.Context) (int, error)
}

// ConfigStore 店铺设置单文档
type ConfigStore interface {
	// GetShopSettings 文档缺失时返回 ErrNotFound
	GetShopSettings(ctx context.Context) (*models.ShopSettings, error)
	SaveShopSettings(ctx context.Context, settings *models.ShopSettings) error
}
