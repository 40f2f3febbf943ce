package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/myshop-next/internal/models"
	"github.com/myshop-next/internal/repository"
	"github.com/myshop-next/internal/store"
)

func setupMirrorDBTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CachedOrder{}, &models.CachedSetting{}); err != nil {
		t.Fatalf("migrate mirror tables failed: %v", err)
	}
	return db
}

func setupMirrorRepoTest(t *testing.T) *repository.GormOrderMirrorRepository {
	t.Helper()
	return repository.NewOrderMirrorRepository(setupMirrorDBTest(t))
}

// fakeProductStore 内存版商品远程集合
type fakeProductStore struct {
	mu       sync.Mutex
	products []models.Product
	nextID   int

	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeProductStore(products ...models.Product) *fakeProductStore {
	return &fakeProductStore{products: products, nextID: 100}
}

func (f *fakeProductStore) List(ctx context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Product(nil), f.products...), nil
}

func (f *fakeProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeProductStore) Create(ctx context.Context, product *models.Product) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := "p" + strconv.Itoa(f.nextID)
	stored := *product
	stored.ID = id
	f.products = append(f.products, stored)
	return id, nil
}

func (f *fakeProductStore) Update(ctx context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.products {
		if f.products[i].ID == product.ID {
			f.products[i] = *product
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeProductStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// fakeOrderStore 内存版订单远程集合
type fakeOrderStore struct {
	mu     sync.Mutex
	orders []models.Order
	nextID int

	createCalls  int
	failCreates  int
	listErr      error
	getErr       error
	updateErr    error
	sentMarkings map[string]bool
}

func newFakeOrderStore(orders ...models.Order) *fakeOrderStore {
	return &fakeOrderStore{
		orders:       orders,
		nextID:       200,
		sentMarkings: make(map[string]bool),
	}
}

func (f *fakeOrderStore) List(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeOrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, o := range f.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeOrderStore) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, o := range f.orders {
		if o.OrderNumber == orderNumber {
			found := o
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeOrderStore) Create(ctx context.Context, order *models.Order) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failCreates > 0 {
		f.failCreates--
		return "", context.DeadlineExceeded
	}
	f.nextID++
	id := "o" + strconv.Itoa(f.nextID)
	stored := *order
	stored.ID = id
	f.orders = append(f.orders, stored)
	return id, nil
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeOrderStore) SetTelegramSent(ctx context.Context, id string, sent bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sentMarkings[id] = sent
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].TelegramSent = sent
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeOrderStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeOrderStore) DeleteAll(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	deleted := len(f.orders)
	f.orders = nil
	return deleted, nil
}

// fakeConfigStore 内存版店铺设置文档
type fakeConfigStore struct {
	mu       sync.Mutex
	settings *models.ShopSettings
	getErr   error
	saveErr  error
}

func (f *fakeConfigStore) GetShopSettings(ctx context.Context) (*models.ShopSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.settings == nil {
		return nil, store.ErrNotFound
	}
	found := *f.settings
	return &found, nil
}

func (f *fakeConfigStore) SaveShopSettings(ctx context.Context, settings *models.ShopSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	stored := *settings
	f.settings = &stored
	return nil
}

// fakeTelegramSender 记录发送内容的假 Telegram 客户端
type fakeTelegramSender struct {
	mu       sync.Mutex
	sendErr  error
	messages []string
	chatIDs  []string
}

func (f *fakeTelegramSender) SendMessage(ctx context.Context, botToken, chatID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.messages = append(f.messages, text)
	f.chatIDs = append(f.chatIDs, chatID)
	return nil
}
