package service

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/models"
)

func adminTestOrders() []models.Order {
	now := time.Now()
	return []models.Order{
		{
			ID:            "o1",
			OrderNumber:   "ORD-MMAAAA0001",
			CustomerName:  "Su Su",
			Phone:         "09777111222",
			Address:       "Yangon",
			Total:         models.NewMoneyFromFloat(45000),
			PaymentMethod: constants.PaymentMethodKPay,
			Status:        constants.OrderStatusPending,
			CreatedAt:     now,
		},
		{
			ID:            "o2",
			OrderNumber:   "ORD-MMAAAA0002",
			CustomerName:  "Ko Ko",
			Phone:         "09777333444",
			Address:       "Mandalay",
			Total:         models.NewMoneyFromFloat(30000),
			PaymentMethod: constants.PaymentMethodCOD,
			Status:        constants.OrderStatusCancelled,
			CreatedAt:     now.Add(-48 * time.Hour),
		},
		{
			ID:            "o3",
			OrderNumber:   "ORD-MMAAAA0003",
			CustomerName:  "Mya Mya",
			Phone:         "09777555666",
			Address:       "Bago",
			Total:         models.NewMoneyFromFloat(12000),
			PaymentMethod: constants.PaymentMethodWavePay,
			Status:        constants.OrderStatusCompleted,
			CreatedAt:     now.Add(-48 * time.Hour),
		},
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{from: constants.OrderStatusPending, to: constants.OrderStatusConfirmed, want: true},
		{from: constants.OrderStatusPending, to: constants.OrderStatusCancelled, want: true},
		{from: constants.OrderStatusPending, to: constants.OrderStatusCompleted, want: false},
		{from: constants.OrderStatusConfirmed, to: constants.OrderStatusDelivering, want: true},
		{from: constants.OrderStatusConfirmed, to: constants.OrderStatusCompleted, want: false},
		{from: constants.OrderStatusDelivering, to: constants.OrderStatusCompleted, want: true},
		{from: constants.OrderStatusDelivering, to: constants.OrderStatusPending, want: false},
		{from: constants.OrderStatusCompleted, to: constants.OrderStatusCancelled, want: false},
		{from: constants.OrderStatusCancelled, to: constants.OrderStatusPending, want: false},
	}
	for _, item := range cases {
		if got := CanTransition(item.from, item.to); got != item.want {
			t.Fatalf("transition %s->%s want %v, got %v", item.from, item.to, item.want, got)
		}
	}
}

func TestOrderAdminUpdateStatus(t *testing.T) {
	remote := newFakeOrderStore(adminTestOrders()...)
	svc := NewOrderAdminService(remote, nil)

	order, err := svc.UpdateStatus(context.Background(), "o1", constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if order.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status want confirmed, got=%q", order.Status)
	}

	// 同状态重复提交是幂等的
	order, err = svc.UpdateStatus(context.Background(), "o1", constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("idempotent update failed: %v", err)
	}
	if order.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status want confirmed, got=%q", order.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), "o1", "shipped"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("want ErrInvalidStatus for unknown status, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "o1", constants.OrderStatusPending); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition for backwards move, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "missing", constants.OrderStatusConfirmed); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

func TestOrderAdminOverview(t *testing.T) {
	svc := NewOrderAdminService(newFakeOrderStore(adminTestOrders()...), nil)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.TotalOrders != 3 {
		t.Fatalf("total orders want 3, got %d", overview.TotalOrders)
	}
	if overview.PendingOrders != 1 {
		t.Fatalf("pending orders want 1, got %d", overview.PendingOrders)
	}
	// 已取消订单不计营收：45000 + 12000
	if overview.TotalRevenue.String() != "57000.00" {
		t.Fatalf("revenue want 57000.00, got %s", overview.TotalRevenue.String())
	}
	if overview.TodayOrders != 1 {
		t.Fatalf("today orders want 1, got %d", overview.TodayOrders)
	}
}

func TestStartOfDayUsesShopTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Yangon")
	if err != nil {
		t.Fatalf("load location failed: %v", err)
	}

	// UTC 6 月 1 日 18:00 在仰光已是 6 月 2 日 00:30
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	dayStart := startOfDay(now, loc)

	want := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)
	if !dayStart.Equal(want) {
		t.Fatalf("day start want %v, got %v", want, dayStart)
	}

	// 17:45 UTC 的订单在仰光属于当日，17:00 UTC 的属于前一日
	sameDay := time.Date(2025, 6, 1, 17, 45, 0, 0, time.UTC)
	if sameDay.Before(dayStart) {
		t.Fatalf("17:45 UTC should fall inside the Yangon day")
	}
	previousDay := time.Date(2025, 6, 1, 17, 0, 0, 0, time.UTC)
	if !previousDay.Before(dayStart) {
		t.Fatalf("17:00 UTC should fall before the Yangon day start")
	}
}

func TestOrderAdminExportCSV(t *testing.T) {
	svc := NewOrderAdminService(newFakeOrderStore(adminTestOrders()...), nil)

	raw, err := svc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv failed: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("csv rows want 4 (header + 3 orders), got %d", len(records))
	}
	header := strings.Join(records[0], "|")
	if header != "Order #|Customer|Phone|Address|Total|Payment|Status|Date" {
		t.Fatalf("unexpected csv header: %q", header)
	}
	if records[1][0] != "ORD-MMAAAA0001" {
		t.Fatalf("first row order number want ORD-MMAAAA0001, got=%q", records[1][0])
	}
	if records[1][4] != "45000.00" {
		t.Fatalf("first row total want 45000.00, got=%q", records[1][4])
	}
	if records[2][5] != constants.PaymentMethodLabels[constants.PaymentMethodCOD] {
		t.Fatalf("payment column should use display label, got=%q", records[2][5])
	}
}

func TestOrderAdminDeleteAll(t *testing.T) {
	remote := newFakeOrderStore(adminTestOrders()...)
	svc := NewOrderAdminService(remote, nil)

	deleted, err := svc.DeleteAll(context.Background())
	if err != nil {
		t.Fatalf("delete all failed: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("deleted count want 3, got %d", deleted)
	}
	orders, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("orders should be empty after delete all")
	}
}

func TestOrderAdminListFallsBackToMirror(t *testing.T) {
	remote := newFakeOrderStore()
	remote.listErr = errors.New("unavailable")
	mirror := setupMirrorRepoTest(t)

	source := adminTestOrders()[0]
	cached, err := models.NewCachedOrder(&source)
	if err != nil {
		t.Fatalf("build cached order failed: %v", err)
	}
	if err := mirror.Save(cached); err != nil {
		t.Fatalf("save mirror failed: %v", err)
	}

	svc := NewOrderAdminService(remote, mirror)
	orders, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list with mirror fallback failed: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderNumber != source.OrderNumber {
		t.Fatalf("mirror fallback want %q, got %v", source.OrderNumber, orders)
	}
}

func TestOrderAdminDeleteToleratesMissing(t *testing.T) {
	svc := NewOrderAdminService(newFakeOrderStore(adminTestOrders()...), nil)
	if err := svc.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("delete of missing order should be tolerated, got %v", err)
	}
}
