package models

import (
	"time"
)

// ProductInventory 各备货地库存
type ProductInventory struct {
	Myanmar  int `json:"myanmar" firestore:"myanmar"`
	Cambodia int `json:"cambodia" firestore:"cambodia"`
	Thailand int `json:"thailand" firestore:"thailand"`
}

// Total 各备货地库存合计
func (inv ProductInventory) Total() int {
	return inv.Myanmar + inv.Cambodia + inv.Thailand
}

// Product 商品（远程文档，文档 ID 即商品 ID）
type Product struct {
	ID          string           `json:"id" firestore:"-"`
	Title       string           `json:"title" firestore:"title"`
	Description string           `json:"description" firestore:"description"`
	Price       Money            `json:"price" firestore:"-"`
	PriceValue  float64          `json:"-" firestore:"price"`
	Category    string           `json:"category" firestore:"category"`
	Sizes       string           `json:"sizes" firestore:"sizes"`
	Colors      string           `json:"colors" firestore:"colors"`
	ImageURL    string           `json:"image_url" firestore:"image_url"`
	Images      []string         `json:"images" firestore:"images"`
	IsActive    bool             `json:"is_active" firestore:"is_active"`
	IsFeatured  bool             `json:"is_featured" firestore:"is_featured"`
	Stock       int              `json:"stock" firestore:"stock"`
	Inventory   ProductInventory `json:"inventory" firestore:"inventory"`
	Origin      string           `json:"origin,omitempty" firestore:"origin"`
	CreatedAt   time.Time        `json:"created_at" firestore:"created_at"`
}

// MaxExtraImages 主图之外最多允许的附加图数量
const MaxExtraImages = 2

// NormalizePrice 远程文档读写前后同步 Money 与浮点字段
func (p *Product) NormalizePrice() {
	if p.Price.IsZero() && p.PriceValue != 0 {
		p.Price = NewMoneyFromFloat(p.PriceValue)
		return
	}
	p.PriceValue = p.Price.Float64()
}

// NormalizeImages 附加图超出上限时截断
func (p *Product) NormalizeImages() {
	if len(p.Images) > MaxExtraImages {
		p.Images = p.Images[:MaxExtraImages]
	}
}
