package admin

import (
	"github.com/myshop-next/internal/http/handlers/shared"
	"github.com/myshop-next/internal/http/response"
	"github.com/myshop-next/internal/models"
	"github.com/myshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 商品新增/编辑请求
type ProductRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	Price       models.Money            `json:"price"`
	Category    string                  `json:"category"`
	Sizes       string                  `json:"sizes"`
	Colors      string                  `json:"colors"`
	ImageURL    string                  `json:"image_url"`
	Images      []string                `json:"images"`
	Stock       int                     `json:"stock"`
	Inventory   models.ProductInventory `json:"inventory"`
	Origin      string                  `json:"origin"`
	IsActive    *bool                   `json:"is_active"`
	IsFeatured  bool                    `json:"is_featured"`
}

// ListProducts 管理端商品列表（含下架商品）
func (h *Handler) ListProducts(c *gin.Context) {
	response.Success(c, gin.H{
		"products": h.CatalogService.List(),
		"fallback": h.CatalogService.UsingFallback(),
	})
}

// CreateProduct 新增商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.CatalogService.Add(c.Request.Context(), service.AddProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		ImageURL:    req.ImageURL,
		Images:      req.Images,
		Stock:       req.Stock,
		Inventory:   req.Inventory,
		Origin:      req.Origin,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct 编辑商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	existing, err := h.CatalogService.ByID(c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	product := *existing
	product.Title = req.Title
	product.Description = req.Description
	product.Price = req.Price
	product.Category = req.Category
	product.Sizes = req.Sizes
	product.Colors = req.Colors
	product.ImageURL = req.ImageURL
	product.Images = req.Images
	product.Stock = req.Stock
	product.Inventory = req.Inventory
	product.Origin = req.Origin
	product.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if err := h.CatalogService.Update(c.Request.Context(), &product); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.CatalogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// RefreshProducts 重新拉取远程目录
func (h *Handler) RefreshProducts(c *gin.Context) {
	if err := h.CatalogService.Refresh(c.Request.Context()); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"products": h.CatalogService.List(),
		"fallback": h.CatalogService.UsingFallback(),
	})
}
