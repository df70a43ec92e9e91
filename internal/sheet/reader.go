package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook 读取一个工作簿的全部工作表并归一化
// 空表与没有数据行的表被跳过；单元格值保留原始字符串
func ReadWorkbook(path string) ([]Sheet, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	names := wb.GetSheetList()
	sheets := make([]Sheet, 0, len(names))

	for _, name := range names {
		rows, err := wb.GetRows(name)
		if err != nil {
			continue
		}
		if len(rows) <= 1 {
			continue
		}

		headers := make([]string, 0, len(rows[0]))
		for _, h := range rows[0] {
			headers = append(headers, strings.TrimSpace(h))
		}

		data := make([]map[string]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			record := make(map[string]string, len(headers))
			empty := true
			for i, h := range headers {
				if h == "" {
					continue
				}
				var v string
				if i < len(row) {
					v = row[i]
				}
				if strings.TrimSpace(v) != "" {
					empty = false
				}
				record[h] = v
			}
			// 全空行（格式残留）直接丢弃
			if empty {
				continue
			}
			data = append(data, record)
		}

		sheets = append(sheets, Sheet{
			Name:    name,
			Headers: headers,
			Rows:    data,
		})
	}

	return sheets, nil
}
