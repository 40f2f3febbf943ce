package repository

import (
	"errors"

	"github.com/myshop-next/internal/models"

	"gorm.io/gorm"
)

// OrderMirrorRepository 订单本地镜像数据访问接口
type OrderMirrorRepository interface {
	Save(order *models.CachedOrder) error
	GetByOrderNumber(orderNumber string) (*models.CachedOrder, error)
	GetByRemoteID(remoteID string) (*models.CachedOrder, error)
	List() ([]models.CachedOrder, error)
	UpdateStatus(remoteID, status string) error
	SetTelegramSent(remoteID string, sent bool) error
	DeleteByRemoteID(remoteID string) error
	DeleteAll() error
}

// GormOrderMirrorRepository GORM 实现
type GormOrderMirrorRepository struct {
	db *gorm.DB
}

// NewOrderMirrorRepository 创建订单镜像仓库
func NewOrderMirrorRepository(db *gorm.DB) *GormOrderMirrorRepository {
	return &GormOrderMirrorRepository{db: db}
}

// Save 按远程 ID 幂等写入镜像行
func (r *GormOrderMirrorRepository) Save(order *models.CachedOrder) error {
	var existing models.CachedOrder
	err := r.db.Where("remote_id = ?", order.RemoteID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(order).Error
		}
		return err
	}
	order.ID = existing.ID
	order.CreatedAt = existing.CreatedAt
	return r.db.Save(order).Error
}

// GetByOrderNumber 按订单编号查询，未命中返回 nil
func (r *GormOrderMirrorRepository) GetByOrderNumber(orderNumber string) (*models.CachedOrder, error) {
	var order models.CachedOrder
	if err := r.db.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByRemoteID 按远程 ID 查询，未命中返回 nil
func (r *GormOrderMirrorRepository) GetByRemoteID(remoteID string) (*models.CachedOrder, error) {
	var order models.CachedOrder
	if err := r.db.Where("remote_id = ?", remoteID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List 按下单时间倒序返回全部镜像订单
func (r *GormOrderMirrorRepository) List() ([]models.CachedOrder, error) {
	var orders []models.CachedOrder
	if err := r.db.Order("ordered_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus 更新镜像订单状态
func (r *GormOrderMirrorRepository) UpdateStatus(remoteID, status string) error {
	return r.db.Model(&models.CachedOrder{}).
		Where("remote_id = ?", remoteID).
		Update("status", status).Error
}

// SetTelegramSent 更新通知发送标记
func (r *GormOrderMirrorRepository) SetTelegramSent(remoteID string, sent bool) error {
	return r.db.Model(&models.CachedOrder{}).
		Where("remote_id = ?", remoteID).
		Update("telegram_sent", sent).Error
}

// DeleteByRemoteID 删除单个镜像订单
func (r *GormOrderMirrorRepository) DeleteByRemoteID(remoteID string) error {
	return r.db.Where("remote_id = ?", remoteID).Delete(&models.CachedOrder{}).Error
}

// DeleteAll 清空镜像订单
func (r *GormOrderMirrorRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.CachedOrder{}).Error
}
