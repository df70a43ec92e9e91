package sheet

// Platform 导出表格的来源平台
type Platform string

const (
	PlatformShopee  Platform = "Shopee"
	PlatformLazada  Platform = "Lazada"
	PlatformTikTok  Platform = "TikTok"
	PlatformUnknown Platform = "Unknown"
)

// Sheet 归一化后的工作表：表头 + 以表头为键的行
// 屏蔽具体表格库的行结构，侦测与抽取只依赖这一层
type Sheet struct {
	Name    string
	Headers []string
	Rows    []map[string]string
}

// Columns 语义字段到实际表头的解析结果，空串表示该表缺少此字段
type Columns struct {
	OrderID         string
	TrackingNumber  string
	ProductName     string
	ParentSku       string
	VariationName   string
	Quantity        string
	DealPrice       string
	Username        string
	ReceiverName    string
	PhoneNumber     string
	DeliveryAddress string
	SkuWeight       string
	ShippingCourier string

	// Lazada 地址分段列（shippingAddress2..shippingAddress5）
	LazadaAddress [4]string

	// TikTok 地址分段列，拼接顺序固定：详细地址、barangay、市、省、大区
	DetailAddress string
	Barangay      string
	Municipality  string
	Province      string
	Region        string
}

// OrderRow 归一化后的订单行
// 每次搜索都从表格重建，不落库；OrderCode 由引擎按 parent SKU 注解
type OrderRow struct {
	Source          string  `json:"source"`
	OrderID         string  `json:"orderId"`
	TrackingNumber  string  `json:"trackingNumber"`
	ProductName     string  `json:"productName"`
	ParentSku       string  `json:"parentSku"`
	VariationName   string  `json:"variationName"`
	Quantity        int     `json:"quantity"`
	DealPrice       string  `json:"dealPrice"`
	Username        string  `json:"username"`
	ReceiverName    string  `json:"receiverName"`
	PhoneNumber     string  `json:"phoneNumber"`
	DeliveryAddress string  `json:"deliveryAddress"`
	SkuWeight       string  `json:"skuWeight"`
	ShippingCourier string  `json:"shippingCourier"`
	OrderCode       *string `json:"orderCode"`
	HasOrderCode    bool    `json:"hasOrderCode"`
}
