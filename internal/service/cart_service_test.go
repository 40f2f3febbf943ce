package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/models"
)

func setupCartTest(t *testing.T) (*CartService, *fakeProductStore) {
	t.Helper()
	remote := newFakeProductStore(catalogTestProducts()...)
	catalog := NewCatalogService(remote)
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load catalog failed: %v", err)
	}
	return NewCartService(catalog, time.Hour), remote
}

func TestCartAddItemAccumulates(t *testing.T) {
	cart, _ := setupCartTest(t)

	detail, err := cart.AddItem("s1", "a1", 2)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if detail.ItemCount != 2 {
		t.Fatalf("item count want 2, got %d", detail.ItemCount)
	}

	detail, err = cart.AddItem("s1", "a1", 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("same product should stay one line, got %d lines", len(detail.Items))
	}
	if detail.ItemCount != 5 {
		t.Fatalf("item count want 5, got %d", detail.ItemCount)
	}
	if detail.Total.String() != "150.00" {
		t.Fatalf("total want 150.00, got %s", detail.Total.String())
	}
}

func TestCartTotalsMixedBasket(t *testing.T) {
	remote := newFakeProductStore(
		models.Product{ID: "p1", Title: "Linen Shirt", Category: constants.CategoryClothing, Price: models.NewMoneyFromFloat(12), IsActive: true},
		models.Product{ID: "p2", Title: "Silk Scarf", Category: constants.CategoryAccessories, Price: models.NewMoneyFromFloat(8.5), IsActive: true},
	)
	catalog := NewCatalogService(remote)
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load catalog failed: %v", err)
	}
	cart := NewCartService(catalog, time.Hour)

	if _, err := cart.AddItem("s1", "p1", 2); err != nil {
		t.Fatalf("add p1 failed: %v", err)
	}
	detail, err := cart.AddItem("s1", "p2", 1)
	if err != nil {
		t.Fatalf("add p2 failed: %v", err)
	}
	if detail.ItemCount != 3 {
		t.Fatalf("item count want 3, got %d", detail.ItemCount)
	}
	if detail.Total.String() != "32.50" {
		t.Fatalf("total want 32.50, got %s", detail.Total.String())
	}
}

func TestCartAddItemDefaultsQuantity(t *testing.T) {
	cart, _ := setupCartTest(t)
	detail, err := cart.AddItem("s1", "a2", 0)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if detail.ItemCount != 1 {
		t.Fatalf("zero quantity should default to 1, got %d", detail.ItemCount)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	cart, _ := setupCartTest(t)
	if _, err := cart.AddItem("s1", "missing", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	cart, _ := setupCartTest(t)
	if _, err := cart.AddItem("s1", "a1", 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	detail, err := cart.UpdateQuantity("s1", "a1", 7)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if detail.ItemCount != 7 {
		t.Fatalf("item count want 7, got %d", detail.ItemCount)
	}

	// 数量 0 等价于移除
	detail, err = cart.UpdateQuantity("s1", "a1", 0)
	if err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("zero quantity should remove line, got %d lines", len(detail.Items))
	}

	if _, err := cart.UpdateQuantity("s1", "a1", -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity, got %v", err)
	}
	if _, err := cart.UpdateQuantity("s1", "a2", 3); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound for line not in cart, got %v", err)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	cart, _ := setupCartTest(t)
	if _, err := cart.AddItem("s1", "a1", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := cart.AddItem("s1", "a2", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	detail, err := cart.RemoveItem("s1", "a1")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(detail.Items) != 1 || detail.Items[0].Product.ID != "a2" {
		t.Fatalf("expected only a2 left, got %v", detail.Items)
	}

	cart.Clear("s1")
	detail, err = cart.Get("s1")
	if err != nil {
		t.Fatalf("get after clear failed: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("cart should be empty after clear")
	}
}

func TestCartLinesFrozenAgainstCatalogEdits(t *testing.T) {
	remote := newFakeProductStore(catalogTestProducts()...)
	catalog := NewCatalogService(remote)
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load catalog failed: %v", err)
	}
	cart := NewCartService(catalog, time.Hour)

	if _, err := cart.AddItem("s1", "a1", 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := cart.AddItem("s1", "a2", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	// 加入购物车后改价、下架都不影响已定格的行
	product, err := catalog.ByID("a1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	edited := *product
	edited.Price = models.NewMoneyFromFloat(999)
	edited.IsActive = false
	if err := catalog.Update(context.Background(), &edited); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := catalog.Delete(context.Background(), "a2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	detail, err := cart.Get("s1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("cart lines must survive catalog edits, got %v", detail.Items)
	}
	if detail.Items[0].Product.Price.String() != "30.00" {
		t.Fatalf("line price must stay 30.00, got %s", detail.Items[0].Product.Price.String())
	}
	if detail.Total.String() != "75.00" {
		t.Fatalf("total want 75.00, got %s", detail.Total.String())
	}
}

func TestCartRejectsInactiveProduct(t *testing.T) {
	cart, _ := setupCartTest(t)
	// a3 在目录中存在但已下架
	if _, err := cart.AddItem("s1", "a3", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound for inactive product, got %v", err)
	}
}

func TestCartSessionsAreIsolated(t *testing.T) {
	cart, _ := setupCartTest(t)
	if _, err := cart.AddItem("s1", "a1", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	detail, err := cart.Get("s2")
	if err != nil {
		t.Fatalf("get other session failed: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("sessions must not share carts")
	}
}

func TestCartRejectsBlankSession(t *testing.T) {
	cart, _ := setupCartTest(t)
	if _, err := cart.Get("  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for blank session, got %v", err)
	}
	if _, err := cart.AddItem("", "a1", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for blank session, got %v", err)
	}
}

func TestCartSweepExpiredSessions(t *testing.T) {
	remote := newFakeProductStore(catalogTestProducts()...)
	catalog := NewCatalogService(remote)
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load catalog failed: %v", err)
	}
	cart := NewCartService(catalog, time.Millisecond)

	if _, err := cart.AddItem("s1", "a1", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	cart.sweep()

	if lines := cart.Snapshot("s1"); len(lines) != 0 {
		t.Fatalf("expired session should be swept, got %v", lines)
	}
}
