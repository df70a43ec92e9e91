package recon

import (
	"fmt"
	"regexp"
)

// 整词匹配 powder，"Protein Powerhouse" 里的 power 不能命中
var powderRe = regexp.MustCompile(`(?i)\bpowder\b`)

// FormatOrderCode 生成扫描界面展示的订单代号
// 规则按优先级：无代号返回空串；PFFB-2B 是固定特例；
// 商品名整词含 powder 用 Powder 格式；有规格带规格；否则只带数量
func FormatOrderCode(orderCode, parentSku, productName, variation string, quantity int) string {
	if orderCode == "" {
		return ""
	}

	if quantity < 1 {
		quantity = 1
	}

	if parentSku == "PFFB-2B" {
		return fmt.Sprintf("%s (%s) - %d", orderCode, parentSku, quantity)
	}
	if powderRe.MatchString(productName) {
		return fmt.Sprintf("%s Powder - %d", orderCode, quantity)
	}
	if variation != "" {
		return fmt.Sprintf("%s - %s x %d", orderCode, variation, quantity)
	}
	return fmt.Sprintf("%s - %d", orderCode, quantity)
}
