package public

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/myshop-next/internal/constants"
	"github.com/myshop-next/internal/http/response"
	"github.com/myshop-next/internal/provider"
	"github.com/myshop-next/internal/service"
)

func setupPublicTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := service.NewCatalogService(nil)
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load catalog failed: %v", err)
	}
	cart := service.NewCartService(catalog, time.Hour)
	container := &provider.Container{
		CatalogService: catalog,
		CartService:    cart,
	}
	handler := New(container)

	engine := gin.New()
	engine.GET("/api/v1/public/products", handler.GetProducts)
	engine.GET("/api/v1/public/products/:id", handler.GetProductByID)
	engine.GET("/api/v1/public/categories", handler.GetCategories)
	engine.GET("/api/v1/cart", handler.GetCart)
	engine.POST("/api/v1/cart/items", handler.AddCartItem)
	engine.PUT("/api/v1/cart/items/:product_id", handler.UpdateCartItem)
	engine.DELETE("/api/v1/cart/items/:product_id", handler.RemoveCartItem)
	return engine
}

func decodeEnvelope(t *testing.T, body string) response.Response {
	t.Helper()
	var envelope response.Response
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("decode response failed: %v, body=%s", err, body)
	}
	return envelope
}

func TestCartRequiresSessionHeader(t *testing.T) {
	engine := setupPublicTest(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/cart", nil))

	envelope := decodeEnvelope(t, w.Body.String())
	if envelope.StatusCode != response.CodeBadRequest {
		t.Fatalf("missing session header want status_code 400, got %d", envelope.StatusCode)
	}
}

func TestCartAddAndGetFlow(t *testing.T) {
	engine := setupPublicTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"product_id":"1","quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.HeaderSessionID, "sess-abc")
	engine.ServeHTTP(w, req)

	envelope := decodeEnvelope(t, w.Body.String())
	if envelope.StatusCode != response.CodeOK {
		t.Fatalf("add item want status_code 0, got %d (msg=%s)", envelope.StatusCode, envelope.Msg)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/v1/cart", nil)
	req.Header.Set(constants.HeaderSessionID, "sess-abc")
	engine.ServeHTTP(w, req)

	envelope = decodeEnvelope(t, w.Body.String())
	if envelope.StatusCode != response.CodeOK {
		t.Fatalf("get cart want status_code 0, got %d", envelope.StatusCode)
	}
	data, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("cart payload missing, got %T", envelope.Data)
	}
	if count, _ := data["item_count"].(float64); count != 2 {
		t.Fatalf("item count want 2, got %v", data["item_count"])
	}
	if total, _ := data["total"].(string); total != "24.00" {
		t.Fatalf("total want 24.00, got %v", data["total"])
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	engine := setupPublicTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"product_id":"missing"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.HeaderSessionID, "sess-abc")
	engine.ServeHTTP(w, req)

	envelope := decodeEnvelope(t, w.Body.String())
	if envelope.StatusCode != response.CodeNotFound {
		t.Fatalf("unknown product want status_code 404, got %d", envelope.StatusCode)
	}
}

func TestCartUpdateToZeroRemovesLine(t *testing.T) {
	engine := setupPublicTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"product_id":"1","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.HeaderSessionID, "sess-abc")
	engine.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", "/api/v1/cart/items/1", strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.HeaderSessionID, "sess-abc")
	engine.ServeHTTP(w, req)

	envelope := decodeEnvelope(t, w.Body.String())
	if envelope.StatusCode != response.CodeOK {
		t.Fatalf("update to zero want status_code 0, got %d", envelope.StatusCode)
	}
	data, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("cart payload missing, got %T", envelope.Data)
	}
	items, _ := data["items"].([]interface{})
	if len(items) != 0 {
		t.Fatalf("zero quantity should remove line, got %v", items)
	}
}

func TestGetProductByID(t *testing.T) {
	engine := setupPublicTest(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/public/products/1", nil))
	envelope := decodeEnvelope(t, w.Body.String())
	if envelope.StatusCode != response.CodeOK {
		t.Fatalf("existing product want status_code 0, got %d", envelope.StatusCode)
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/public/products/999", nil))
	envelope = decodeEnvelope(t, w.Body.String())
	if envelope.StatusCode != response.CodeNotFound {
		t.Fatalf("unknown product want status_code 404, got %d", envelope.StatusCode)
	}
}

func TestGetCategories(t *testing.T) {
	engine := setupPublicTest(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/public/categories", nil))
	envelope := decodeEnvelope(t, w.Body.String())
	if envelope.StatusCode != response.CodeOK {
		t.Fatalf("categories want status_code 0, got %d", envelope.StatusCode)
	}
	data, ok := envelope.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("categories payload missing, got %T", envelope.Data)
	}
	categories, _ := data["categories"].([]interface{})
	if len(categories) != len(constants.ProductCategories) {
		t.Fatalf("categories want %d entries, got %d", len(constants.ProductCategories), len(categories))
	}
}
