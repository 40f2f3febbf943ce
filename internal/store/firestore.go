package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/myshop-next/internal/config"
	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/models"
)

// Client 远程文档库客户端（Cloud Firestore）
type Client struct {
	fs      *firestore.Client
	prefix  string
	timeout time.Duration
}

// NewClient 初始化远程文档库客户端。
// credentials_file 为空时走 ADC（Application Default Credentials）。
func NewClient(ctx context.Context, cfg config.FirestoreConfig) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, ErrDisabled
	}
	var (
		fs  *firestore.Client
		err error
	)
	if cfg.CredentialsFile != "" {
		fs, err = firestore.NewClient(ctx, cfg.ProjectID, option.WithCredentialsFile(cfg.CredentialsFile))
	} else {
		fs, err = firestore.NewClient(ctx, cfg.ProjectID)
	}
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger.Infow("remote_store_connected", "project_id", cfg.ProjectID)
	return &Client{fs: fs, prefix: cfg.CollectionPrefix, timeout: timeout}, nil
}

// Close 关闭底层连接
func (c *Client) Close() error {
	if c == nil || c.fs == nil {
		return nil
	}
	return c.fs.Close()
}

// Products 商品集合访问器
func (c *Client) Products() ProductStore {
	return &firestoreProducts{client: c}
}

// Orders 订单集合访问器
func (c *Client) Orders() OrderStore {
	return &firestoreOrders{client: c}
}

// Config 店铺设置访问器
func (c *Client) Config() ConfigStore {
	return &firestoreConfig{client: c}
}

func (c *Client) collection(name string) *firestore.CollectionRef {
	if c.prefix != "" {
		name = c.prefix + "_" + name
	}
	return c.fs.Collection(name)
}

// withTimeout 每次远程调用都限定在配置的超时内
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

func translateErr(err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

type firestoreProducts struct {
	client *Client
}

func (s *firestoreProducts) List(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	iter := s.client.collection(constants.CollectionProducts).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var products []models.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		var p models.Product
		if err := doc.DataTo(&p); err != nil {
			logger.Warnw("remote_product_decode_failed", "doc_id", doc.Ref.ID, "error", err)
			continue
		}
		p.ID = doc.Ref.ID
		p.NormalizePrice()
		products = append(products, p)
	}
	return products, nil
}

func (s *firestoreProducts) Get(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	doc, err := s.client.collection(constants.CollectionProducts).Doc(id).Get(ctx)
	if err != nil {
		return nil, translateErr(err)
	}
	var p models.Product
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", id, err)
	}
	p.ID = doc.Ref.ID
	p.NormalizePrice()
	return &p, nil
}

func (s *firestoreProducts) Create(ctx context.Context, product *models.Product) (string, error) {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	product.NormalizePrice()
	ref, _, err := s.client.collection(constants.CollectionProducts).Add(ctx, product)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	return ref.ID, nil
}

func (s *firestoreProducts) Update(ctx context.Context, product *models.Product) error {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	product.NormalizePrice()
	_, err := s.client.collection(constants.CollectionProducts).Doc(product.ID).Set(ctx, product)
	return translateErr(err)
}

func (s *firestoreProducts) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	_, err := s.client.collection(constants.CollectionProducts).Doc(id).Delete(ctx)
	return translateErr(err)
}

type firestoreOrders struct {
	client *Client
}

func (s *firestoreOrders) List(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	iter := s.client.collection(constants.CollectionOrders).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var orders []models.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		var o models.Order
		if err := doc.DataTo(&o); err != nil {
			logger.Warnw("remote_order_decode_failed", "doc_id", doc.Ref.ID, "error", err)
			continue
		}
		o.ID = doc.Ref.ID
		o.NormalizeAmounts()
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *firestoreOrders) Get(ctx context.Context, id string) (*models.Order, error) {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	doc, err := s.client.collection(constants.CollectionOrders).Doc(id).Get(ctx)
	if err != nil {
		return nil, translateErr(err)
	}
	var o models.Order
	if err := doc.DataTo(&o); err != nil {
		return nil, fmt.Errorf("decode order %s: %w", id, err)
	}
	o.ID = doc.Ref.ID
	o.NormalizeAmounts()
	return &o, nil
}

func (s *firestoreOrders) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	iter := s.client.collection(constants.CollectionOrders).
		Where("order_number", "==", orderNumber).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query order %s: %w", orderNumber, err)
	}
	var o models.Order
	if err := doc.DataTo(&o); err != nil {
		return nil, fmt.Errorf("decode order %s: %w", orderNumber, err)
	}
	o.ID = doc.Ref.ID
	o.NormalizeAmounts()
	return &o, nil
}

func (s *firestoreOrders) Create(ctx context.Context, order *models.Order) (string, error) {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	order.NormalizeAmounts()
	ref, _, err := s.client.collection(constants.CollectionOrders).Add(ctx, order)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	return ref.ID, nil
}

func (s *firestoreOrders) UpdateStatus(ctx context.Context, id, orderStatus string) error {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	_, err := s.client.collection(constants.CollectionOrders).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: orderStatus},
	})
	return translateErr(err)
}

func (s *firestoreOrders) SetTelegramSent(ctx context.Context, id string, sent bool) error {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	_, err := s.client.collection(constants.CollectionOrders).Doc(id).Update(ctx, []firestore.Update{
		{Path: "telegram_sent", Value: sent},
	})
	return translateErr(err)
}

func (s *firestoreOrders) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	_, err := s.client.collection(constants.CollectionOrders).Doc(id).Delete(ctx)
	return translateErr(err)
}

func (s *firestoreOrders) DeleteAll(ctx context.Context) (int, error) {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	iter := s.client.collection(constants.CollectionOrders).Documents(ctx)
	defer iter.Stop()

	deleted := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, fmt.Errorf("delete all orders: %w", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, fmt.Errorf("delete order %s: %w", doc.Ref.ID, err)
		}
		deleted++
	}
	return deleted, nil
}

type firestoreConfig struct {
	client *Client
}

func (s *firestoreConfig) GetShopSettings(ctx context.Context) (*models.ShopSettings, error) {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	doc, err := s.client.collection(constants.CollectionConfig).
		Doc(constants.ConfigDocShopSettings).
		Get(ctx)
	if err != nil {
		return nil, translateErr(err)
	}
	var settings models.ShopSettings
	if err := doc.DataTo(&settings); err != nil {
		return nil, fmt.Errorf("decode shop settings: %w", err)
	}
	return &settings, nil
}

func (s *firestoreConfig) SaveShopSettings(ctx context.Context, settings *models.ShopSettings) error {
	ctx, cancel := s.client.withTimeout(ctx)
	defer cancel()

	_, err := s.client.collection(constants.CollectionConfig).
		Doc(constants.ConfigDocShopSettings).
		Set(ctx, settings)
	return err
}
