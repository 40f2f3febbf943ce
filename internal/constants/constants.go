package constants

// 商品分类
const (
	CategoryClothing    = "Clothing"
	CategoryShoes       = "Shoes"
	CategoryBags        = "Bags"
	CategoryAccessories = "Accessories"
	CategoryBeauty      = "Beauty"
	CategoryElectronics = "Electronics"
)

// ProductCategories 固定分类集合（顺序即前台展示顺序）
var ProductCategories = []string{
	CategoryClothing,
	CategoryShoes,
	CategoryBags,
	CategoryAccessories,
	CategoryBeauty,
	CategoryElectronics,
}

// 支付方式标签（线下转账/货到付款，无支付网关）
const (
	PaymentMethodKPay    = "kpay"
	PaymentMethodWavePay = "wavepay"
	PaymentMethodAYA     = "aya"
	PaymentMethodKBZBank = "kbz_bank"
	PaymentMethodCOD     = "cod"
)

// PaymentMethodLabels 支付方式显示名
var PaymentMethodLabels = map[string]string{
	PaymentMethodKPay:    "KBZ Pay (KPay)",
	PaymentMethodWavePay: "Wave Pay",
	PaymentMethodAYA:     "AYA Bank",
	PaymentMethodKBZBank: "KBZ Bank",
	PaymentMethodCOD:     "Cash on Delivery",
}

// 订单状态
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusDelivering = "delivering"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// 发货地
const (
	StockLocationMyanmar  = "myanmar"
	StockLocationCambodia = "cambodia"
	StockLocationThailand = "thailand"
)

// StockLocations 发货地集合
var StockLocations = []string{
	StockLocationMyanmar,
	StockLocationCambodia,
	StockLocationThailand,
}

// 远程文档库集合名
const (
	CollectionProducts = "products"
	CollectionOrders   = "orders"
	CollectionConfig   = "config"

	// ConfigDocShopSettings 店铺设置单文档 ID
	ConfigDocShopSettings = "shop_settings"
)

// 队列
const (
	QueueDefault = "default"

	// TaskOrderNotify 新订单 Telegram 通知任务
	TaskOrderNotify = "order:notify"
)

// 语言
const (
	LocaleEn = "en"
	LocaleMy = "my"
)

// HeaderSessionID 购物车会话标识请求头
const HeaderSessionID = "X-Session-ID"

// OrderNoPrefix 订单编号前缀（MM 为店铺国家标记）
const OrderNoPrefix = "ORD-MM"

// ShopTimezone 店铺所在时区，今日统计按此时区的零点划界
const ShopTimezone = "Asia/Yangon"
