package router

import (
	"fmt"
	"strings"

	"github.com/myshop-next/internal/cache"
	"github.com/myshop-next/internal/config"
	adminhandlers "github.com/myshop-next/internal/http/handlers/admin"
	publichandlers "github.com/myshop-next/internal/http/handlers/public"
	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ms"
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limited",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/shop", publicHandler.GetShopInfo)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/featured", publicHandler.GetFeaturedProducts)
			public.GET("/products/:id", publicHandler.GetProductByID)
			public.GET("/categories", publicHandler.GetCategories)
		}

		// 购物车接口（会话标识由 X-Session-ID 请求头携带）
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:product_id", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:product_id", publicHandler.RemoveCartItem)
			cart.DELETE("", publicHandler.ClearCart)
		}

		// 下单与发票
		apiV1.POST("/orders", publicHandler.CreateOrder)
		apiV1.GET("/orders/:order_number", publicHandler.GetInvoice)

		// 管理端
		admin := apiV1.Group("/admin")
		{
			admin.POST("/login",
				RateLimitMiddleware(cache.Client(), adminLoginRule, KeyByIP),
				adminHandler.Login,
			)

			authed := admin.Group("")
			authed.Use(AdminAuthMiddleware(c.AuthService, cfg.JWT.SecretKey))
			{
				authed.POST("/logout", adminHandler.Logout)
				authed.GET("/overview", adminHandler.GetOverview)

				authed.GET("/products", adminHandler.ListProducts)
				authed.POST("/products", adminHandler.CreateProduct)
				authed.PUT("/products/:id", adminHandler.UpdateProduct)
				authed.DELETE("/products/:id", adminHandler.DeleteProduct)
				authed.POST("/products/refresh", adminHandler.RefreshProducts)

				authed.GET("/orders", adminHandler.ListOrders)
				authed.GET("/orders/export", adminHandler.ExportOrdersCSV)
				authed.GET("/orders/:id", adminHandler.GetOrder)
				authed.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
				authed.DELETE("/orders/:id", adminHandler.DeleteOrder)
				authed.DELETE("/orders", adminHandler.DeleteAllOrders)

				authed.GET("/settings", adminHandler.GetSettings)
				authed.PUT("/settings", adminHandler.SaveSettings)
			}
		}
	}

	// 健康检查
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
