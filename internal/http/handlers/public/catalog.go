package public

import (
	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/http/handlers/shared"
	"github.com/myshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetShopInfo 获取店铺公开信息（名称、标语、联系方式、收款账号）
func (h *Handler) GetShopInfo(c *gin.Context) {
	settings, err := h.SettingService.GetPublic(c.Request.Context())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, settings)
}

// GetProducts 获取商品列表。
// 支持 category、q 查询参数；都缺省时返回全部上架商品。
func (h *Handler) GetProducts(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		response.Success(c, gin.H{"products": h.CatalogService.Search(q)})
		return
	}
	if category := c.Query("category"); category != "" {
		response.Success(c, gin.H{"products": h.CatalogService.ByCategory(category)})
		return
	}
	response.Success(c, gin.H{"products": h.CatalogService.ListActive()})
}

// GetFeaturedProducts 获取推荐商品
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	response.Success(c, gin.H{"products": h.CatalogService.Featured()})
}

// GetProductByID 获取单个商品
func (h *Handler) GetProductByID(c *gin.Context) {
	product, err := h.CatalogService.ByID(c.Param("id"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	if !product.IsActive {
		shared.RespondError(c, response.CodeNotFound, "error.product_not_found", nil)
		return
	}
	response.Success(c, product)
}

// GetCategories 获取商品分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	response.Success(c, gin.H{"categories": constants.ProductCategories})
}
