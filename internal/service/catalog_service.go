package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/models"
	"github.com/myshop-next/internal/store"
)

// CatalogService 商品目录服务。
// 内存中持有一份目录快照，读操作只读快照；管理端写操作先写远程，
// 成功后再更新快照。远程集合为空或不可用时回退到内置示例商品。
type CatalogService struct {
	remote store.ProductStore

	mu       sync.RWMutex
	products []models.Product
	fallback bool
	loadedAt time.Time
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(remote store.ProductStore) *CatalogService {
	return &CatalogService{remote: remote}
}

// Load 拉取远程目录并刷新快照。
// 远程出错或集合为空时装入内置示例商品，服务照常可用。
func (s *CatalogService) Load(ctx context.Context) error {
	if s.remote == nil {
		s.setSnapshot(models.SampleProducts(), true)
		return nil
	}
	products, err := s.remote.List(ctx)
	if err != nil {
		logger.Warnw("catalog_remote_load_failed", "error", err, "fallback", "sample_products")
		s.setSnapshot(models.SampleProducts(), true)
		return nil
	}
	if len(products) == 0 {
		logger.Infow("catalog_remote_empty", "fallback", "sample_products")
		s.setSnapshot(models.SampleProducts(), true)
		return nil
	}
	s.setSnapshot(products, false)
	logger.Infow("catalog_loaded", "count", len(products))
	return nil
}

// Refresh 重新拉取远程目录（管理端手动触发）
func (s *CatalogService) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// UsingFallback 当前快照是否为内置示例目录
func (s *CatalogService) UsingFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

// List 返回全部商品快照副本
func (s *CatalogService) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProducts(s.products)
}

// ListActive 返回上架商品
func (s *CatalogService) ListActive() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Product
	for _, p := range s.products {
		if p.IsActive {
			result = append(result, p)
		}
	}
	return result
}

// Featured 返回上架且推荐的商品
func (s *CatalogService) Featured() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Product
	for _, p := range s.products {
		if p.IsFeatured && p.IsActive {
			result = append(result, p)
		}
	}
	return result
}

// ByCategory 按分类返回上架商品
func (s *CatalogService) ByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Product
	for _, p := range s.products {
		if p.IsActive && p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

// ByID 按 ID 查找商品（含下架商品，管理端也用）
func (s *CatalogService) ByID(id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

// Search 在标题、描述、分类中做大小写无关的子串匹配，只搜上架商品
func (s *CatalogService) Search(query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.ListActive()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Product
	for _, p := range s.products {
		if !p.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			result = append(result, p)
		}
	}
	return result
}

// AddProductInput 新增商品输入
type AddProductInput struct {
	Title       string
	Description string
	Price       models.Money
	Category    string
	Sizes       string
	Colors      string
	ImageURL    string
	Images      []string
	Stock       int
	Inventory   models.ProductInventory
	Origin      string
	IsFeatured  bool
}

// Add 新增商品：先写远程拿到文档 ID，成功后插到快照头部
func (s *CatalogService) Add(ctx context.Context, input AddProductInput) (*models.Product, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrInvalidInput
	}
	if s.remote == nil {
		return nil, ErrRemoteUnavailable
	}
	product := models.Product{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Sizes:       input.Sizes,
		Colors:      input.Colors,
		ImageURL:    input.ImageURL,
		Images:      input.Images,
		IsActive:    true,
		IsFeatured:  input.IsFeatured,
		Stock:       input.Stock,
		Inventory:   input.Inventory,
		Origin:      input.Origin,
		CreatedAt:   time.Now(),
	}
	product.NormalizeImages()
	id, err := s.remote.Create(ctx, &product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	s.mu.Lock()
	s.products = append([]models.Product{product}, s.products...)
	s.fallback = false
	s.mu.Unlock()

	logger.Infow("product_created", "product_id", id, "title", product.Title)
	return &product, nil
}

// Update 更新商品：先写远程，成功后替换快照内的对应项
func (s *CatalogService) Update(ctx context.Context, product *models.Product) error {
	if product == nil || strings.TrimSpace(product.ID) == "" {
		return ErrInvalidInput
	}
	if s.remote == nil {
		return ErrRemoteUnavailable
	}
	if _, err := s.ByID(product.ID); err != nil {
		return err
	}
	product.NormalizeImages()
	if err := s.remote.Update(ctx, product); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = *product
			break
		}
	}
	s.mu.Unlock()

	logger.Infow("product_updated", "product_id", product.ID)
	return nil
}

// Delete 删除商品：先删远程，成功后从快照移除
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	if s.remote == nil {
		return ErrRemoteUnavailable
	}
	if _, err := s.ByID(id); err != nil {
		return err
	}
	if err := s.remote.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	logger.Infow("product_deleted", "product_id", id)
	return nil
}

func (s *CatalogService) setSnapshot(products []models.Product, fallback bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.fallback = fallback
	s.loadedAt = time.Now()
}

func copyProducts(src []models.Product) []models.Product {
	if src == nil {
		return nil
	}
	dst := make([]models.Product, len(src))
	copy(dst, src)
	return dst
}
