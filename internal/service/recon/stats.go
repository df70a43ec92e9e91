package recon

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"spxscan/internal/sheet"
)

// CourierStat 单个快递商的扫描进度
// Courier 是展示标签，识别出平台时带平台后缀；Scanned 按不带后缀的原始名join
type CourierStat struct {
	Courier string `json:"courier"`
	Total   int    `json:"total"`
	Scanned int    `json:"scanned"`
}

type courierTracking struct {
	courier  string
	tracking string
}

// CourierStats 重算全部快递商统计
// 每次调用都重扫全部表格：按 (快递商, 运单号) 去重计数，再并上已扫描数。
// 有意保持无状态，结果是尽力而为的快照，不与并发扫描保持事务一致
func (e *Engine) CourierStats() []CourierStat {
	scanned, err := e.store.CountScannedByCourier()
	if err != nil {
		log.Printf("failed to load scanned counts: %v", err)
		scanned = map[string]int{}
	}

	seen := make(map[courierTracking]struct{})
	totals := make(map[string]int)
	platforms := make(map[string]sheet.Platform)

	for _, file := range e.LoadedFiles() {
		sheets, err := sheet.ReadWorkbook(filepath.Join(e.excelDir, file))
		if err != nil {
			log.Printf("skipping unreadable file %s: %v", file, err)
			continue
		}

		for _, sh := range sheets {
			cols := sheet.ResolveColumns(sh.Headers)
			if cols.TrackingNumber == "" || cols.ShippingCourier == "" {
				continue
			}

			platform := sheet.DetectPlatform(sh.Headers)
			rows := sheet.FilterDescriptionRow(sh.Rows, platform, cols)

			for _, raw := range rows {
				courier := strings.TrimSpace(raw[cols.ShippingCourier])
				tracking := strings.TrimSpace(raw[cols.TrackingNumber])
				if courier == "" || tracking == "" {
					continue
				}
				if sheet.IsLeakedDescription(tracking) {
					continue
				}

				// 同一运单跨表/跨文件重复出现只计一次
				key := courierTracking{courier: courier, tracking: tracking}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				totals[courier]++

				if _, ok := platforms[courier]; !ok && platform != sheet.PlatformUnknown {
					platforms[courier] = platform
				}
			}
		}
	}

	stats := make([]CourierStat, 0, len(totals))
	for courier, total := range totals {
		label := courier
		if platform, ok := platforms[courier]; ok {
			label = fmt.Sprintf("%s (%s)", courier, platform)
		}
		stats = append(stats, CourierStat{
			Courier: label,
			Total:   total,
			Scanned: scanned[courier],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Courier < stats[j].Courier
	})

	return stats
}
