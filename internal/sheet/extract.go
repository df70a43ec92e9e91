package sheet

import (
	"strconv"
	"strings"
)

const missingValue = "N/A"

// ExtractRow 将一行原始数据抽取为归一化的 OrderRow
// 仅对运单号已匹配的行调用；缺失字段给 "N/A"，快递商给 "Unknown"，数量兜底为 1
func ExtractRow(row map[string]string, cols Columns, source string) OrderRow {
	get := func(header string) string {
		if header == "" {
			return ""
		}
		return strings.TrimSpace(row[header])
	}

	orDefault := func(v string) string {
		if v == "" {
			return missingValue
		}
		return v
	}

	courier := get(cols.ShippingCourier)
	if courier == "" {
		courier = "Unknown"
	}

	return OrderRow{
		Source:          source,
		OrderID:         orDefault(get(cols.OrderID)),
		TrackingNumber:  get(cols.TrackingNumber),
		ProductName:     orDefault(get(cols.ProductName)),
		ParentSku:       orDefault(get(cols.ParentSku)),
		VariationName:   get(cols.VariationName),
		Quantity:        parseQuantity(get(cols.Quantity)),
		DealPrice:       orDefault(get(cols.DealPrice)),
		Username:        orDefault(get(cols.Username)),
		ReceiverName:    orDefault(get(cols.ReceiverName)),
		PhoneNumber:     orDefault(get(cols.PhoneNumber)),
		DeliveryAddress: composeAddress(row, cols),
		SkuWeight:       orDefault(get(cols.SkuWeight)),
		ShippingCourier: courier,
	}
}

// parseQuantity 数量列可能缺失或含非数字内容，一律兜底为 1
func parseQuantity(v string) int {
	if v == "" {
		return 1
	}
	// Lazada 会导出 "2.0" 这种浮点样式
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil {
		return 1
	}
	q := int(f)
	if q < 1 {
		return 1
	}
	return q
}

// composeAddress 主地址列缺失或为空时的降级链：
// 先试 Lazada 的 shippingAddress2..5 编号分段，再试 TikTok 的
// 详细地址/barangay/市/省/大区 分段，都没有才是 "N/A"
func composeAddress(row map[string]string, cols Columns) string {
	get := func(header string) string {
		if header == "" {
			return ""
		}
		return strings.TrimSpace(row[header])
	}

	if addr := get(cols.DeliveryAddress); addr != "" {
		return addr
	}

	parts := make([]string, 0, 5)
	for _, header := range cols.LazadaAddress {
		if v := get(header); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	for _, header := range []string{
		cols.DetailAddress,
		cols.Barangay,
		cols.Municipality,
		cols.Province,
		cols.Region,
	} {
		if v := get(header); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	return missingValue
}
