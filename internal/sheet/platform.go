package sheet

import "strings"

// 各平台独有的标志表头。表头集合之间有重叠，
// 必须按固定顺序检查：TikTok、Lazada 的标志列最具区分度，Shopee 垫底兜底。
var (
	markersTikTok = []string{"tracking id", "shipping provider name"}
	markersLazada = []string{"sellersku", "trackingcode"}
	markersShopee = []string{"parent sku reference no.", "username (buyer)"}
)

// DetectPlatform 根据标志表头判断导出平台
func DetectPlatform(headers []string) Platform {
	lower := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		lower[strings.ToLower(strings.TrimSpace(h))] = struct{}{}
	}

	has := func(markers []string) bool {
		for _, m := range markers {
			if _, ok := lower[m]; ok {
				return true
			}
		}
		return false
	}

	switch {
	case has(markersTikTok):
		return PlatformTikTok
	case has(markersLazada):
		return PlatformLazada
	case has(markersShopee):
		return PlatformShopee
	default:
		return PlatformUnknown
	}
}

// TikTok 导出会在第二行（首个数据行）塞一行列说明文字而非数据，
// 这些短语足以识别它。
var descriptionMarkers = []string{
	"platform",
	"unique",
	"order's",
	"tracking number",
	"shipping provider",
}

// FilterDescriptionRow 去掉 TikTok 表开头的列说明行
// 只检查首行的订单号、运单号、快递商三列；每表最多去掉一行，其他平台原样返回
func FilterDescriptionRow(rows []map[string]string, platform Platform, cols Columns) []map[string]string {
	if platform != PlatformTikTok || len(rows) == 0 {
		return rows
	}

	first := rows[0]
	candidates := []string{
		first[cols.OrderID],
		first[cols.TrackingNumber],
		first[cols.ShippingCourier],
	}

	for _, v := range candidates {
		if isDescriptionValue(v) {
			return rows[1:]
		}
	}

	return rows
}

func isDescriptionValue(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return false
	}
	if strings.HasSuffix(v, ".") {
		return true
	}
	for _, m := range descriptionMarkers {
		if strings.Contains(v, m) {
			return true
		}
	}
	return false
}

// IsLeakedDescription 判断运单号单元格是否是漏网的说明文字
// 个别导出会把说明行混进数据区，即使不在首行也要剔除
func IsLeakedDescription(trackingValue string) bool {
	v := strings.ToLower(strings.TrimSpace(trackingValue))
	return strings.Contains(v, "order's") || strings.Contains(v, "tracking number.")
}
