package models

import (
	"time"
)

// OrderItem 下单时的商品快照（价格定格在下单瞬间）
type OrderItem struct {
	ProductID string   `json:"product_id" firestore:"product_id"`
	Title     string   `json:"title" firestore:"title"`
	Price     Money    `json:"price" firestore:"-"`
	PriceVal  float64  `json:"-" firestore:"price"`
	Quantity  int      `json:"quantity" firestore:"quantity"`
	Sizes     string   `json:"sizes,omitempty" firestore:"sizes"`
	Colors    string   `json:"colors,omitempty" firestore:"colors"`
	ImageURL  string   `json:"image_url,omitempty" firestore:"image_url"`
	Images    []string `json:"images,omitempty" firestore:"images"`
}

// Subtotal 该行小计
func (it OrderItem) Subtotal() Money {
	return NewMoneyFromDecimal(it.Price.Mul(intToDecimal(it.Quantity)))
}

// Order 订单（远程文档，文档 ID 即订单 ID）
type Order struct {
	ID               string      `json:"id" firestore:"-"`
	OrderNumber      string      `json:"order_number" firestore:"order_number"`
	CustomerName     string      `json:"customer_name" firestore:"customer_name"`
	Phone            string      `json:"phone" firestore:"phone"`
	Address          string      `json:"address" firestore:"address"`
	DeliveryLocation string      `json:"delivery_location" firestore:"delivery_location"`
	Notes            string      `json:"notes,omitempty" firestore:"notes"`
	Items            []OrderItem `json:"items" firestore:"items"`
	Total            Money       `json:"total" firestore:"-"`
	TotalValue       float64     `json:"-" firestore:"total"`
	PaymentMethod    string      `json:"payment_method" firestore:"payment_method"`
	Status           string      `json:"status" firestore:"status"`
	TelegramSent     bool        `json:"telegram_sent" firestore:"telegram_sent"`
	CreatedAt        time.Time   `json:"created_at" firestore:"created_at"`
}

// NormalizeAmounts 远程文档读写前后同步 Money 与浮点字段
func (o *Order) NormalizeAmounts() {
	if o.Total.IsZero() && o.TotalValue != 0 {
		o.Total = NewMoneyFromFloat(o.TotalValue)
	} else {
		o.TotalValue = o.Total.Float64()
	}
	for i := range o.Items {
		it := &o.Items[i]
		if it.Price.IsZero() && it.PriceVal != 0 {
			it.Price = NewMoneyFromFloat(it.PriceVal)
		} else {
			it.PriceVal = it.Price.Float64()
		}
	}
}

// ItemCount 订单内商品件数合计
func (o *Order) ItemCount() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}
