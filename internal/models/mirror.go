package models

import (
	"encoding/json"
	"time"
)

// CachedOrder 订单本地镜像（远程写入成功后落一份，供发票兜底查询）
type CachedOrder struct {
	ID               uint      `gorm:"primarykey" json:"-"`
	RemoteID         string    `gorm:"size:64;uniqueIndex" json:"id"`
	OrderNumber      string    `gorm:"size:32;uniqueIndex" json:"order_number"`
	CustomerName     string    `gorm:"size:255" json:"customer_name"`
	Phone            string    `gorm:"size:64" json:"phone"`
	Address          string    `gorm:"size:500" json:"address"`
	DeliveryLocation string    `gorm:"size:32" json:"delivery_location"`
	Notes            string    `gorm:"size:500" json:"notes"`
	ItemsJSON        string    `gorm:"type:text" json:"-"`
	Total            Money     `gorm:"type:decimal(12,2)" json:"total"`
	PaymentMethod    string    `gorm:"size:32" json:"payment_method"`
	Status           string    `gorm:"size:32;index" json:"status"`
	TelegramSent     bool      `json:"telegram_sent"`
	OrderedAt        time.Time `gorm:"index" json:"created_at"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// TableName 指定表名
func (CachedOrder) TableName() string {
	return "cached_orders"
}

// NewCachedOrder 从远程订单生成镜像行
func NewCachedOrder(o *Order) (*CachedOrder, error) {
	raw, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}
	return &CachedOrder{
		RemoteID:         o.ID,
		OrderNumber:      o.OrderNumber,
		CustomerName:     o.CustomerName,
		Phone:            o.Phone,
		Address:          o.Address,
		DeliveryLocation: o.DeliveryLocation,
		Notes:            o.Notes,
		ItemsJSON:        string(raw),
		Total:            o.Total,
		PaymentMethod:    o.PaymentMethod,
		Status:           o.Status,
		TelegramSent:     o.TelegramSent,
		OrderedAt:        o.CreatedAt,
	}, nil
}

// ToOrder 还原成订单
func (c *CachedOrder) ToOrder() (*Order, error) {
	var items []OrderItem
	if c.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(c.ItemsJSON), &items); err != nil {
			return nil, err
		}
	}
	return &Order{
		ID:               c.RemoteID,
		OrderNumber:      c.OrderNumber,
		CustomerName:     c.CustomerName,
		Phone:            c.Phone,
		Address:          c.Address,
		DeliveryLocation: c.DeliveryLocation,
		Notes:            c.Notes,
		Items:            items,
		Total:            c.Total,
		PaymentMethod:    c.PaymentMethod,
		Status:           c.Status,
		TelegramSent:     c.TelegramSent,
		CreatedAt:        c.OrderedAt,
	}, nil
}

// CachedSetting 店铺设置本地镜像（远程不可用时读这里）
type CachedSetting struct {
	ID        uint      `gorm:"primarykey"`
	Key       string    `gorm:"size:64;uniqueIndex"`
	Value     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (CachedSetting) TableName() string {
	return "cached_settings"
}
