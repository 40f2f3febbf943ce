package provider

import (
	"context"
	"time"

	"github.com/myshop-next/internal/cache"
	"github.com/myshop-next/internal/config"
	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/models"
	"github.com/myshop-next/internal/queue"
	"github.com/myshop-next/internal/repository"
	"github.com/myshop-next/internal/service"
	"github.com/myshop-next/internal/store"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Remote      *store.Client

	// Repositories（本地镜像）
	OrderMirrorRepo   repository.OrderMirrorRepository
	SettingMirrorRepo repository.SettingMirrorRepository

	// Services
	SettingService      *service.SettingService
	CatalogService      *service.CatalogService
	CartService         *service.CartService
	CheckoutService     *service.CheckoutService
	InvoiceService      *service.InvoiceService
	OrderAdminService   *service.OrderAdminService
	AuthService         *service.AuthService
	TelegramService     *service.TelegramService
	NotificationService *service.NotificationService
}

// NewContainer 初始化容器
func NewContainer(ctx context.Context, cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	// 初始化远程文档库，失败不阻断启动（目录会回退到内置示例）
	var remote *store.Client
	if client, err := store.NewClient(ctx, cfg.Firestore); err != nil {
		logger.Warnw("provider_init_remote_store_failed", "error", err)
	} else {
		remote = client
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Remote:      remote,
	}

	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	if db == nil {
		return
	}
	c.OrderMirrorRepo = repository.NewOrderMirrorRepository(db)
	c.SettingMirrorRepo = repository.NewSettingMirrorRepository(db)
}

func (c *Container) initServices() {
	var (
		productStore store.ProductStore
		orderStore   store.OrderStore
		configStore  store.ConfigStore
	)
	if c.Remote != nil {
		productStore = c.Remote.Products()
		orderStore = c.Remote.Orders()
		configStore = c.Remote.Config()
	}

	c.SettingService = service.NewSettingService(
		configStore,
		c.SettingMirrorRepo,
		c.Config.Admin.FallbackPassword,
		c.Config.Telegram,
	)
	c.CatalogService = service.NewCatalogService(productStore)
	c.CartService = service.NewCartService(
		c.CatalogService,
		time.Duration(c.Config.Shop.CartTTLMinutes)*time.Minute,
	)
	c.TelegramService = service.NewTelegramService(
		time.Duration(c.Config.Telegram.TimeoutSeconds) * time.Second,
	)
	c.NotificationService = service.NewNotificationService(
		c.SettingService,
		c.TelegramService,
		orderStore,
		c.OrderMirrorRepo,
	)
	c.CheckoutService = service.NewCheckoutService(
		c.CartService,
		orderStore,
		c.OrderMirrorRepo,
		c.QueueClient,
		c.NotificationService,
	)
	c.InvoiceService = service.NewInvoiceService(orderStore, c.OrderMirrorRepo)
	c.OrderAdminService = service.NewOrderAdminService(orderStore, c.OrderMirrorRepo)
	c.AuthService = service.NewAuthService(c.Config, c.SettingService)
}

// Close 释放容器持有的外部连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_failed", "error", err)
		}
	}
	if c.Remote != nil {
		if err := c.Remote.Close(); err != nil {
			logger.Warnw("provider_close_remote_failed", "error", err)
		}
	}
}
