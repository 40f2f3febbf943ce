package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/models"
)

func setupCheckoutTest(t *testing.T) (*CheckoutService, *CartService, *fakeOrderStore) {
	t.Helper()
	catalog := NewCatalogService(newFakeProductStore(catalogTestProducts()...))
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load catalog failed: %v", err)
	}
	cart := NewCartService(catalog, time.Hour)
	orders := newFakeOrderStore()
	checkout := NewCheckoutService(cart, orders, nil, nil, nil)
	return checkout, cart, orders
}

func validCheckoutInput(sessionID string) CheckoutInput {
	return CheckoutInput{
		SessionID:     sessionID,
		CustomerName:  "Aung Aung",
		Phone:         "09 7771 2345",
		Address:       "No. 12, Yangon",
		PaymentMethod: constants.PaymentMethodKPay,
	}
}

func TestCheckoutSubmit(t *testing.T) {
	checkout, cart, orders := setupCheckoutTest(t)
	if _, err := cart.AddItem("s1", "a1", 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := cart.AddItem("s1", "a2", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	order, err := checkout.Submit(context.Background(), validCheckoutInput("s1"))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if order.ID == "" {
		t.Fatalf("expected remote order id assigned")
	}
	if !strings.HasPrefix(order.OrderNumber, constants.OrderNoPrefix) {
		t.Fatalf("order number missing prefix, got=%q", order.OrderNumber)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("new order status want pending, got=%q", order.Status)
	}
	if order.Total.String() != "75.00" {
		t.Fatalf("order total want 75.00, got=%s", order.Total.String())
	}
	if len(order.Items) != 2 {
		t.Fatalf("order items want 2, got %d", len(order.Items))
	}
	if order.DeliveryLocation != constants.StockLocationMyanmar {
		t.Fatalf("delivery location should default to myanmar, got=%q", order.DeliveryLocation)
	}
	if order.Items[0].ImageURL != "https://cdn.example/denim-main.jpg" || len(order.Items[0].Images) != 1 {
		t.Fatalf("order item must carry the product image snapshot, got url=%q images=%v",
			order.Items[0].ImageURL, order.Items[0].Images)
	}
	if orders.createCalls != 1 {
		t.Fatalf("remote create calls want 1, got %d", orders.createCalls)
	}

	// 下单成功后购物车清空
	detail, err := cart.Get("s1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("cart should be cleared after checkout")
	}
}

func TestCheckoutValidationWritesNothing(t *testing.T) {
	checkout, cart, orders := setupCheckoutTest(t)
	if _, err := cart.AddItem("s1", "a1", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	_, err := checkout.Submit(context.Background(), CheckoutInput{
		SessionID:     "s1",
		CustomerName:  " ",
		Phone:         "123",
		Address:       "",
		PaymentMethod: "cheque",
	})
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("want ValidationErrors, got %v", err)
	}
	fields := make(map[string]bool)
	for _, item := range errs {
		fields[item.Field] = true
	}
	for _, field := range []string{"customer_name", "phone", "address", "payment_method"} {
		if !fields[field] {
			t.Fatalf("missing validation error for %s, got=%v", field, fields)
		}
	}
	if orders.createCalls != 0 {
		t.Fatalf("validation failure must not hit remote store")
	}

	detail, err := cart.Get("s1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("cart must stay intact after validation failure")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	checkout, _, orders := setupCheckoutTest(t)
	if _, err := checkout.Submit(context.Background(), validCheckoutInput("s1")); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty, got %v", err)
	}
	if orders.createCalls != 0 {
		t.Fatalf("empty cart must not hit remote store")
	}
}

func TestCheckoutRetriesOnceOnStoreError(t *testing.T) {
	checkout, cart, orders := setupCheckoutTest(t)
	orders.failCreates = 1
	if _, err := cart.AddItem("s1", "a1", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	order, err := checkout.Submit(context.Background(), validCheckoutInput("s1"))
	if err != nil {
		t.Fatalf("submit with one transient failure should succeed: %v", err)
	}
	if orders.createCalls != 2 {
		t.Fatalf("remote create calls want 2 (initial + retry), got %d", orders.createCalls)
	}
	if order.ID == "" {
		t.Fatalf("expected remote order id after retry")
	}
}

func TestCheckoutStoreFailureKeepsCart(t *testing.T) {
	checkout, cart, orders := setupCheckoutTest(t)
	orders.failCreates = 2
	if _, err := cart.AddItem("s1", "a1", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if _, err := checkout.Submit(context.Background(), validCheckoutInput("s1")); !errors.Is(err, ErrOrderStoreFailed) {
		t.Fatalf("want ErrOrderStoreFailed, got %v", err)
	}
	if orders.createCalls != 2 {
		t.Fatalf("remote create calls want 2, got %d", orders.createCalls)
	}

	detail, err := cart.Get("s1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("cart must stay intact when remote store fails")
	}
}

func TestCheckoutRejectsConcurrentSubmit(t *testing.T) {
	checkout, cart, orders := setupCheckoutTest(t)
	if _, err := cart.AddItem("s1", "a1", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	// 模拟同会话已有一次提交在途
	checkout.mu.Lock()
	checkout.submitting["s1"] = true
	checkout.mu.Unlock()

	if _, err := checkout.Submit(context.Background(), validCheckoutInput("s1")); !errors.Is(err, ErrCheckoutInProgress) {
		t.Fatalf("want ErrCheckoutInProgress, got %v", err)
	}
	if orders.createCalls != 0 {
		t.Fatalf("second submit must not hit remote store, got %d calls", orders.createCalls)
	}

	// 在途提交结束后可以正常下单
	checkout.mu.Lock()
	delete(checkout.submitting, "s1")
	checkout.mu.Unlock()

	if _, err := checkout.Submit(context.Background(), validCheckoutInput("s1")); err != nil {
		t.Fatalf("submit after release failed: %v", err)
	}
	if orders.createCalls != 1 {
		t.Fatalf("remote create calls want 1, got %d", orders.createCalls)
	}
}

func TestCheckoutSnapshotsPriceAtSubmit(t *testing.T) {
	catalog := NewCatalogService(newFakeProductStore(catalogTestProducts()...))
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load catalog failed: %v", err)
	}
	cart := NewCartService(catalog, time.Hour)
	orders := newFakeOrderStore()
	checkout := NewCheckoutService(cart, orders, nil, nil, nil)

	if _, err := cart.AddItem("s1", "a1", 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	order, err := checkout.Submit(context.Background(), validCheckoutInput("s1"))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// 下单后改价不影响已生成订单的条目价格
	product, err := catalog.ByID("a1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	product.Price = models.NewMoneyFromFloat(60)
	if err := catalog.Update(context.Background(), product); err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	if order.Items[0].Price.String() != "30.00" {
		t.Fatalf("order item price should be frozen at 30.00, got=%s", order.Items[0].Price.String())
	}
}

func TestCheckoutPhoneValidation(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{phone: "09777123456", valid: true},
		{phone: "+95 9 777 123", valid: true},
		{phone: "09-777-1234", valid: true},
		{phone: "1234567", valid: false},
		{phone: "09abc12345", valid: false},
		{phone: "", valid: false},
	}
	for _, item := range cases {
		input := validCheckoutInput("s1")
		input.Phone = item.phone
		errs := ValidateCheckout(input)
		hasPhoneErr := false
		for _, e := range errs {
			if e.Field == "phone" {
				hasPhoneErr = true
			}
		}
		if item.valid && hasPhoneErr {
			t.Fatalf("phone %q should be valid", item.phone)
		}
		if !item.valid && !hasPhoneErr {
			t.Fatalf("phone %q should be rejected", item.phone)
		}
	}
}
