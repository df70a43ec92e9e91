package sheet

import "strings"

// 各语义字段的同义词表，覆盖 Shopee / Lazada / TikTok 三种导出口径。
// 关键词顺序即优先级：排前面的词命中后不再看后面的词。
// 像 "sku" 这类短词必须放在末尾，否则会抢走 "parent sku" 等更精确的列。
var (
	keywordsOrderID = []string{
		"order id", "orderid", "order_id", "ordernumber", "order no", "order number",
	}
	keywordsTrackingNumber = []string{
		"tracking number", "tracking id", "tracking no", "trackingcode",
		"tracking_number", "tracking", "awb", "waybill",
	}
	keywordsProductName = []string{
		"product name", "productname", "product_name", "item name", "itemname",
		"item", "product",
	}
	keywordsParentSku = []string{
		"parent sku reference no.", "parent sku", "parent_sku",
		"sku reference no.", "sku reference", "sku ref",
		"seller sku", "sellersku", "sku",
	}
	keywordsVariationName = []string{
		"variation name", "variation", "variant", "option",
	}
	keywordsQuantity = []string{
		"quantity", "qty", "quantity ordered",
	}
	keywordsDealPrice = []string{
		"deal price", "paidprice", "unit price", "selling price", "price",
	}
	keywordsUsername = []string{
		"username (buyer)", "buyer username", "username", "customername",
		"buyer", "customer",
	}
	keywordsReceiverName = []string{
		"receiver name", "recipient", "receiver", "ship to name",
	}
	keywordsPhoneNumber = []string{
		"phone number", "phone #", "billingphone", "phone", "contact", "mobile", "tel",
	}
	keywordsDeliveryAddress = []string{
		"delivery address", "shipping address", "shippingaddress",
		"ship to address", "detail address", "address",
	}
	keywordsSkuWeight = []string{
		"sku total weight", "total weight", "item weight", "weight",
	}
	keywordsShippingCourier = []string{
		"shipping option", "shipping provider name", "shippingprovider",
		"courier", "carrier", "logistics", "shipment method", "shipping",
	}

	// Lazada 地址分段，索引 0..3 对应 shippingAddress2..shippingAddress5
	keywordsLazadaAddress = [4][]string{
		{"shippingaddress2", "shipping address 2"},
		{"shippingaddress3", "shipping address 3"},
		{"shippingaddress4", "shipping address 4"},
		{"shippingaddress5", "shipping address 5"},
	}

	// TikTok 地址分段
	keywordsDetailAddress = []string{"detail address", "detailed address"}
	keywordsBarangay      = []string{"barangay", "villages"}
	keywordsMunicipality  = []string{"municipality", "regency and city", "city"}
	keywordsProvince      = []string{"province"}
	keywordsRegion        = []string{"region"}
)

// ResolveColumn 在表头中解析一个语义字段
// 两轮匹配：第一轮要求表头与关键词完全相等（忽略大小写），第二轮允许子串包含。
// 完全相等优先，避免 "sku" 抢走 "seller sku" 这类跨平台的子串歧义；
// 同一关键词内按原始列序取第一个命中的表头。未命中返回空串，由调用方按字段缺失处理。
func ResolveColumn(headers []string, keywords []string) string {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for _, kw := range keywords {
		for i, h := range lower {
			if h == kw {
				return headers[i]
			}
		}
	}

	for _, kw := range keywords {
		for i, h := range lower {
			if h != "" && strings.Contains(h, kw) {
				return headers[i]
			}
		}
	}

	return ""
}

// ResolveColumns 解析一个表的全部语义字段
func ResolveColumns(headers []string) Columns {
	cols := Columns{
		OrderID:         ResolveColumn(headers, keywordsOrderID),
		TrackingNumber:  ResolveColumn(headers, keywordsTrackingNumber),
		ProductName:     ResolveColumn(headers, keywordsProductName),
		ParentSku:       ResolveColumn(headers, keywordsParentSku),
		VariationName:   ResolveColumn(headers, keywordsVariationName),
		Quantity:        ResolveColumn(headers, keywordsQuantity),
		DealPrice:       ResolveColumn(headers, keywordsDealPrice),
		Username:        ResolveColumn(headers, keywordsUsername),
		ReceiverName:    ResolveColumn(headers, keywordsReceiverName),
		PhoneNumber:     ResolveColumn(headers, keywordsPhoneNumber),
		DeliveryAddress: ResolveColumn(headers, keywordsDeliveryAddress),
		SkuWeight:       ResolveColumn(headers, keywordsSkuWeight),
		ShippingCourier: ResolveColumn(headers, keywordsShippingCourier),

		DetailAddress: ResolveColumn(headers, keywordsDetailAddress),
		Barangay:      ResolveColumn(headers, keywordsBarangay),
		Municipality:  ResolveColumn(headers, keywordsMunicipality),
		Province:      ResolveColumn(headers, keywordsProvince),
		Region:        ResolveColumn(headers, keywordsRegion),
	}

	for i, kws := range keywordsLazadaAddress {
		cols.LazadaAddress[i] = ResolveColumn(headers, kws)
	}

	return cols
}
