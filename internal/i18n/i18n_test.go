package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func localeTestContext(t *testing.T, target string, header string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	if header != "" {
		c.Request.Header.Set("Accept-Language", header)
	}
	return c
}

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		target string
		header string
		want   string
	}{
		{target: "/api/v1/public/shop?lang=my", want: LocaleMy},
		{target: "/api/v1/public/shop?lang=mm", want: LocaleMy},
		{target: "/api/v1/public/shop?lang=en", want: LocaleEn},
		{target: "/api/v1/public/shop?lang=fr", want: LocaleEn},
		{target: "/api/v1/public/shop", header: "my-MM,my;q=0.9,en;q=0.8", want: LocaleMy},
		{target: "/api/v1/public/shop", header: "en-US,en;q=0.9", want: LocaleEn},
		{target: "/api/v1/public/shop", header: "bur", want: LocaleMy},
		{target: "/api/v1/public/shop", want: LocaleEn},
		// query 参数优先于请求头
		{target: "/api/v1/public/shop?lang=en", header: "my", want: LocaleEn},
	}
	for _, item := range cases {
		got := ResolveLocale(localeTestContext(t, item.target, item.header))
		if got != item.want {
			t.Fatalf("resolve locale failed, target=%q header=%q want=%q got=%q", item.target, item.header, item.want, got)
		}
	}
}

func TestTranslationFallback(t *testing.T) {
	if got := T(LocaleEn, "error.not_found"); got == "error.not_found" {
		t.Fatalf("english message should exist")
	}
	// 缅文缺失的 key 回退英文
	if got := T(LocaleMy, "error.session_missing"); got != T(LocaleEn, "error.session_missing") {
		t.Fatalf("missing burmese message should fall back to english, got=%q", got)
	}
	// 双语都缺失时返回 key 本身
	if got := T(LocaleEn, "error.never_defined"); got != "error.never_defined" {
		t.Fatalf("unknown key should echo back, got=%q", got)
	}
}

func TestBurmeseValidationMessages(t *testing.T) {
	keys := []string{
		"error.customer_name_required",
		"error.phone_invalid",
		"error.address_required",
		"error.payment_invalid",
		"error.cart_empty",
	}
	for _, key := range keys {
		my := T(LocaleMy, key)
		en := T(LocaleEn, key)
		if my == key || en == key {
			t.Fatalf("message %q must exist in both locales", key)
		}
		if my == en {
			t.Fatalf("message %q should be localized for my, got same as en", key)
		}
	}
}
