package models

import (
	"time"

	"github.com/myshop-next/internal/constants"
)

// SampleProducts 内置示例商品（远程商品集合为空或不可用时的兜底目录）
func SampleProducts() []Product {
	now := time.Now()
	products := []Product{
		{
			ID:          "1",
			Title:       "Classic White T-Shirt",
			Description: "Premium cotton t-shirt, comfortable and stylish for everyday wear.",
			Price:       NewMoneyFromFloat(12.00),
			Category:    constants.CategoryClothing,
			Sizes:       "S, M, L, XL",
			Colors:      "White, Black, Gray",
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
			IsActive:    true,
			IsFeatured:  true,
			Stock:       100,
		},
		{
			ID:          "2",
			Title:       "Slim Fit Jeans",
			Description: "Modern slim fit jeans, perfect for casual and semi-formal occasions.",
			Price:       NewMoneyFromFloat(28.00),
			Category:    constants.CategoryClothing,
			Sizes:       "28, 30, 32, 34",
			Colors:      "Blue, Black",
			ImageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=400&fit=crop",
			IsActive:    true,
			IsFeatured:  true,
			Stock:       80,
		},
		{
			ID:          "3",
			Title:       "Running Sneakers",
			Description: "Lightweight and breathable running shoes with cushioned sole.",
			Price:       NewMoneyFromFloat(45.00),
			Category:    constants.CategoryShoes,
			Sizes:       "38, 39, 40, 41, 42, 43",
			Colors:      "White, Black, Blue",
			ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop",
			IsActive:    true,
			IsFeatured:  true,
			Stock:       60,
		},
		{
			ID:          "4",
			Title:       "Leather Crossbody Bag",
			Description: "Genuine leather crossbody bag with multiple compartments.",
			Price:       NewMoneyFromFloat(35.00),
			Category:    constants.CategoryBags,
			Sizes:       "One Size",
			Colors:      "Brown, Black, Tan",
			ImageURL:    "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=400&h=400&fit=crop",
			IsActive:    true,
			IsFeatured:  true,
			Stock:       40,
		},
		{
			ID:          "5",
			Title:       "Stainless Steel Watch",
			Description: "Elegant stainless steel watch with quartz movement. Water resistant.",
			Price:       NewMoneyFromFloat(55.00),
			Category:    constants.CategoryAccessories,
			Sizes:       "One Size",
			Colors:      "Silver, Gold, Black",
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop",
			IsActive:    true,
			IsFeatured:  true,
			Stock:       30,
		},
		{
			ID:          "6",
			Title:       "Vitamin C Serum",
			Description: "Brightening vitamin C serum for glowing and even skin tone.",
			Price:       NewMoneyFromFloat(18.00),
			Category:    constants.CategoryBeauty,
			Sizes:       "30ml",
			Colors:      "One Color",
			ImageURL:    "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?w=400&h=400&fit=crop",
			IsActive:    true,
			IsFeatured:  false,
			Stock:       90,
		},
		{
			ID:          "7",
			Title:       "Wireless Earbuds",
			Description: "Bluetooth 5.0 earbuds with noise cancellation and long battery life.",
			Price:       NewMoneyFromFloat(38.00),
			Category:    constants.CategoryElectronics,
			Sizes:       "One Size",
			Colors:      "White, Black",
			ImageURL:    "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400&h=400&fit=crop",
			IsActive:    true,
			IsFeatured:  false,
			Stock:       50,
		},
		{
			ID:          "8",
			Title:       "Floral Summer Dress",
			Description: "Light and breezy floral dress perfect for warm weather.",
			Price:       NewMoneyFromFloat(22.00),
			Category:    constants.CategoryClothing,
			Sizes:       "S, M, L",
			Colors:      "Pink, Blue, Yellow",
			ImageURL:    "https://images.unsplash.com/photo-1585487000160-6ebcfceb0d03?w=400&h=400&fit=crop",
			IsActive:    true,
			IsFeatured:  true,
			Stock:       45,
		},
	}
	for i := range products {
		products[i].CreatedAt = now
		products[i].NormalizePrice()
	}
	return products
}
