package recon

import (
	"regexp"
	"strings"
)

var (
	// 运单号：PH 开头的字母数字串
	reTrackingLine = regexp.MustCompile(`(?i)^PH[A-Z0-9]+$`)
	// 订单号：6 位日期数字开头的字母数字串
	reOrderIDLine = regexp.MustCompile(`(?i)^[0-9]{6}[A-Z0-9]+$`)
)

// CompareResult 清单核对结果
type CompareResult struct {
	Total          int      `json:"total"`
	ScannedCount   int      `json:"scannedCount"`
	RemainingCount int      `json:"remainingCount"`
	Remaining      []string `json:"remaining"`
	Scanned        []string `json:"scanned"`
	OrderIDs       []string `json:"orderIds"`
}

// CompareList 核对一份粘贴的清单
// 按行拆分并 trim，分类为运单号或订单号（两种格式都不匹配的行静默丢弃），
// 再按扫描状态把运单号分成已扫/未扫两组。运单号比较忽略大小写
func (e *Engine) CompareList(raw string) (CompareResult, error) {
	scannedRows, err := e.store.ListScannedTracking()
	if err != nil {
		return CompareResult{}, err
	}

	scannedSet := make(map[string]struct{}, len(scannedRows))
	for _, tn := range scannedRows {
		scannedSet[strings.ToLower(tn)] = struct{}{}
	}

	trackingNumbers := make([]string, 0)
	orderIDs := make([]string, 0)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case reTrackingLine.MatchString(line):
			trackingNumbers = append(trackingNumbers, line)
		case reOrderIDLine.MatchString(line):
			orderIDs = append(orderIDs, line)
		}
	}

	remaining := make([]string, 0, len(trackingNumbers))
	scanned := make([]string, 0, len(trackingNumbers))
	for _, tn := range trackingNumbers {
		if _, ok := scannedSet[strings.ToLower(tn)]; ok {
			scanned = append(scanned, tn)
		} else {
			remaining = append(remaining, tn)
		}
	}

	return CompareResult{
		Total:          len(trackingNumbers),
		ScannedCount:   len(scanned),
		RemainingCount: len(remaining),
		Remaining:      remaining,
		Scanned:        scanned,
		OrderIDs:       orderIDs,
	}, nil
}
