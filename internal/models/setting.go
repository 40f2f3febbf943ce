package models

// ShopSettings 店铺设置（远程文档 config/shop_settings 单文档）
type ShopSettings struct {
	ShopName         string `json:"shop_name" firestore:"shop_name"`
	ShopTagline      string `json:"shop_tagline" firestore:"shop_tagline"`
	Slogan1          string `json:"slogan1" firestore:"slogan1"`
	Slogan2          string `json:"slogan2" firestore:"slogan2"`
	Slogan3          string `json:"slogan3" firestore:"slogan3"`
	HeroSubtitle     string `json:"hero_subtitle" firestore:"hero_subtitle"`
	PhoneNumber      string `json:"phone_number" firestore:"phone_number"`
	ShopAddress      string `json:"shop_address" firestore:"shop_address"`
	FacebookURL      string `json:"facebook_url" firestore:"facebook_url"`
	TiktokURL        string `json:"tiktok_url" firestore:"tiktok_url"`
	TelegramHandle   string `json:"telegram_handle" firestore:"telegram_handle"`
	TelegramBotToken string `json:"telegram_bot_token" firestore:"telegram_bot_token"`
	TelegramChatID   string `json:"telegram_chat_id" firestore:"telegram_chat_id"`
	KpayNumber       string `json:"kpay_number" firestore:"kpay_number"`
	KpayName         string `json:"kpay_name" firestore:"kpay_name"`
	WavepayNumber    string `json:"wavepay_number" firestore:"wavepay_number"`
	WavepayName      string `json:"wavepay_name" firestore:"wavepay_name"`
	AyaAccount       string `json:"aya_account" firestore:"aya_account"`
	AyaName          string `json:"aya_name" firestore:"aya_name"`
	KbzAccount       string `json:"kbz_account" firestore:"kbz_account"`
	KbzName          string `json:"kbz_name" firestore:"kbz_name"`
	ViberNumber      string `json:"viber_number" firestore:"viber_number"`
	ViberChannel     string `json:"viber_channel" firestore:"viber_channel"`
	AdminPassword    string `json:"-" firestore:"admin_password"`
}

// Public 返回可对外公开的设置副本（抹掉凭据类字段）
func (s ShopSettings) Public() ShopSettings {
	s.TelegramBotToken = ""
	s.TelegramChatID = ""
	s.AdminPassword = ""
	return s
}

// DefaultShopSettings 内置默认设置，远程文档缺失或字段为空时按字段合并
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		ShopName:       "The Fashion By IZ",
		ShopTagline:    "Wholesale & Retail Women Clothing",
		Slogan1:        "WHOLESALE & RETAIL WOMEN CLOTHING",
		Slogan2:        "MADE IN THAILAND 🇹🇭",
		Slogan3:        "Quality, Price, Service",
		HeroSubtitle:   "Premium fashion at wholesale prices — Made in Thailand",
		PhoneNumber:    "+95 9 257 128 464",
		ShopAddress:    "J-30, 3rd Floor, Yuzana Plaza, Banyardala Street, MinglarTaungNyunt, Yangon, Myanmar",
		FacebookURL:    "https://www.facebook.com/TheFashionbyIZ",
		TiktokURL:      "https://www.tiktok.com/@thefashion_thefashion2",
		TelegramHandle: "@thefashion_mm",
		KpayNumber:     "09-257-128-464",
		KpayName:       "The Fashion By IZ",
		WavepayNumber:  "09-250-936-673",
		WavepayName:    "The Fashion By IZ",
		AyaName:        "The Fashion By IZ",
		KbzName:        "The Fashion By IZ",
	}
}
