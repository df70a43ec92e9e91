package recon

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"spxscan/internal/sheet"
)

// SearchResult 一次扫描/搜索的完整返回
type SearchResult struct {
	Results        []sheet.OrderRow `json:"results"`
	Error          string           `json:"error,omitempty"`
	CourierStats   []CourierStat    `json:"courierStats"`
	AlreadyScanned bool             `json:"alreadyScanned"`
}

// mergeKey 同一逻辑订单行被平台拆成多条物理行时的合并键
// 运单号以外的字段都是大小写敏感的精确比较
type mergeKey struct {
	source         string
	trackingNumber string
	orderID        string
	parentSku      string
	variationName  string
	productName    string
}

// Search 在全部表格中检索运单号
// 流程：逐表解析列并抽取匹配行 -> 按合并键合并拆分行 -> 注解订单代号 ->
// 有结果则幂等记录扫描状态 -> 重算快递商统计一并返回。
// 单个文件读取失败只跳过该文件，不中断整个搜索
func (e *Engine) Search(trackingNumber string) SearchResult {
	query := strings.ToLower(strings.TrimSpace(trackingNumber))

	files := e.LoadedFiles()
	if len(files) == 0 {
		return SearchResult{
			Results:      []sheet.OrderRow{},
			Error:        fmt.Sprintf("no spreadsheet files found in %s", e.excelDir),
			CourierStats: []CourierStat{},
		}
	}

	extracted := make([]sheet.OrderRow, 0)

	for _, file := range files {
		sheets, err := sheet.ReadWorkbook(filepath.Join(e.excelDir, file))
		if err != nil {
			log.Printf("skipping unreadable file %s: %v", file, err)
			continue
		}

		for _, sh := range sheets {
			cols := sheet.ResolveColumns(sh.Headers)
			// 运单号列解析不出来的表不可能命中，整表跳过
			if cols.TrackingNumber == "" {
				continue
			}

			platform := sheet.DetectPlatform(sh.Headers)
			rows := sheet.FilterDescriptionRow(sh.Rows, platform, cols)

			for _, raw := range rows {
				tv := strings.TrimSpace(raw[cols.TrackingNumber])
				if sheet.IsLeakedDescription(tv) {
					continue
				}
				if strings.ToLower(tv) != query {
					continue
				}
				extracted = append(extracted, sheet.ExtractRow(raw, cols, file))
			}
		}
	}

	merged := mergeRows(extracted)
	for i := range merged {
		e.annotateOrderCode(&merged[i])
	}

	alreadyScanned := false
	if len(merged) > 0 {
		courier := merged[0].ShippingCourier

		scanned, err := e.store.IsScanned(strings.TrimSpace(trackingNumber))
		if err != nil {
			log.Printf("failed to check scan state for %s: %v", trackingNumber, err)
		}
		alreadyScanned = scanned

		if err := e.store.MarkScanned(strings.TrimSpace(trackingNumber), courier); err != nil {
			log.Printf("failed to mark %s scanned: %v", trackingNumber, err)
		}
	}

	return SearchResult{
		Results:        merged,
		CourierStats:   e.CourierStats(),
		AlreadyScanned: alreadyScanned,
	}
}

// mergeRows 按合并键合并拆分行并累加数量，保留首次出现的顺序
func mergeRows(rows []sheet.OrderRow) []sheet.OrderRow {
	merged := make([]sheet.OrderRow, 0, len(rows))
	index := make(map[mergeKey]int, len(rows))

	for _, row := range rows {
		key := mergeKey{
			source:         row.Source,
			trackingNumber: row.TrackingNumber,
			orderID:        row.OrderID,
			parentSku:      row.ParentSku,
			variationName:  row.VariationName,
			productName:    row.ProductName,
		}
		if i, ok := index[key]; ok {
			merged[i].Quantity += row.Quantity
			continue
		}
		index[key] = len(merged)
		merged = append(merged, row)
	}

	return merged
}

// annotateOrderCode 按 parent SKU 查映射并生成展示代号
// 合并之后才注解，展示的数量就是累加后的数量
func (e *Engine) annotateOrderCode(row *sheet.OrderRow) {
	code, found, err := e.store.GetOrderCode(row.ParentSku)
	if err != nil {
		log.Printf("failed to look up order code for %s: %v", row.ParentSku, err)
		return
	}
	if !found || code == "" {
		return
	}

	formatted := FormatOrderCode(code, row.ParentSku, row.ProductName, row.VariationName, row.Quantity)
	row.OrderCode = &formatted
	row.HasOrderCode = true
}
