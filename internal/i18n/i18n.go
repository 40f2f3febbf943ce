package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 支持的语言
const (
	LocaleEn = "en"
	LocaleMy = "my"
)

// DefaultLocale 未指定语言时使用的语言
const DefaultLocale = LocaleEn

// ResolveLocale 解析请求语言：优先 query 参数 lang，其次 Accept-Language 头
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return normalize(lang)
	}
	if header := c.GetHeader("Accept-Language"); header != "" {
		// 仅取首个语言标签，忽略权重
		first := strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
		if idx := strings.IndexByte(first, ';'); idx >= 0 {
			first = first[:idx]
		}
		return normalize(first)
	}
	return DefaultLocale
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexByte(lang, '-'); idx >= 0 {
		lang = lang[:idx]
	}
	switch lang {
	case LocaleMy, "mm", "bur":
		return LocaleMy
	default:
		return LocaleEn
	}
}

// T 按语言查找文案，缺失时回退英文，再缺失返回 key 本身
func T(locale, key string) string {
	if msgs, ok := messages[normalize(locale)]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[LocaleEn][key]; ok {
		return msg
	}
	return key
}

// Sprintf 带参数的文案格式化
func Sprintf(locale, key string, args ...any) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

var messages = map[string]map[string]string{
	LocaleEn: {
		"error.bad_request":            "Invalid request",
		"error.validation_failed":      "Validation failed",
		"error.not_found":              "Not found",
		"error.internal":               "Internal server error",
		"error.unauthorized":           "Unauthorized",
		"error.forbidden":              "Forbidden",
		"error.auth_header_missing":    "Authorization header missing",
		"error.auth_header_invalid":    "Authorization header invalid",
		"error.token_invalid":          "Invalid token",
		"error.token_revoked":          "Token revoked",
		"error.jwt_secret_missing":     "JWT secret not configured",
		"error.rate_limited":           "Too many attempts, please try again later",
		"error.rate_limit_unavailable": "Rate limiter unavailable",
		"error.password_invalid":       "Incorrect password",
		"error.session_missing":        "Session ID required",
		"error.product_not_found":      "Product not found",
		"error.order_not_found":        "Order not found",
		"error.cart_empty":             "Your cart is empty",
		"error.quantity_invalid":       "Invalid quantity",
		"error.checkout_in_progress":   "Checkout already in progress",
		"error.order_store_failed":     "Could not save your order, please try again",
		"error.status_invalid":         "Invalid order status",
		"error.transition_invalid":     "Order status transition not allowed",
		"error.remote_unavailable":     "Store backend unavailable",
		"error.customer_name_required": "Please enter your name",
		"error.phone_invalid":          "Please enter a valid phone number",
		"error.address_required":       "Please enter your delivery address",
		"error.payment_invalid":        "Please choose a payment method",
		"msg.order_created":            "Order placed successfully",
		"msg.order_deleted":            "Order deleted",
		"msg.orders_cleared":           "All orders deleted",
		"msg.settings_saved":           "Settings saved",
	},
	LocaleMy: {
		"error.bad_request":            "တောင်းဆိုမှု မမှန်ကန်ပါ",
		"error.validation_failed":      "အချက်အလက် မပြည့်စုံပါ",
		"error.not_found":              "ရှာမတွေ့ပါ",
		"error.internal":               "ဆာဗာ ချို့ယွင်းချက် ဖြစ်ပွားနေသည်",
		"error.unauthorized":           "ခွင့်ပြုချက် မရှိပါ",
		"error.password_invalid":       "စကားဝှက် မှားယွင်းနေသည်",
		"error.cart_empty":             "သင့်ခြင်းထဲတွင် ပစ္စည်းမရှိသေးပါ",
		"error.order_store_failed":     "အော်ဒါ သိမ်းဆည်း၍မရပါ၊ ထပ်မံကြိုးစားပါ",
		"error.customer_name_required": "ကျေးဇူးပြု၍ အမည်ထည့်ပါ",
		"error.phone_invalid":          "ဖုန်းနံပါတ် မှန်ကန်စွာထည့်ပါ",
		"error.address_required":       "ပို့ဆောင်ရန် လိပ်စာထည့်ပါ",
		"error.payment_invalid":        "ငွေပေးချေမှုနည်းလမ်း ရွေးချယ်ပါ",
		"msg.order_created":            "အော်ဒါ အောင်မြင်စွာ တင်ပြီးပါပြီ",
	},
}
