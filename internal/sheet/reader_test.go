package sheet

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, path string, sheets map[string][][]string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				t.Fatalf("rename sheet failed: %v", err)
			}
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("new sheet failed: %v", err)
			}
		}
		for ri, row := range rows {
			for ci, v := range row {
				cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
				if err != nil {
					t.Fatalf("cell name failed: %v", err)
				}
				if err := f.SetCellValue(name, cell, v); err != nil {
					t.Fatalf("set cell failed: %v", err)
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook failed: %v", err)
	}
}

func TestReadWorkbook(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "orders.xlsx")
	writeTestWorkbook(t, path, map[string][][]string{
		"orders": {
			{"Order ID", " Tracking Number ", "Quantity"},
			{"250101XYZ", "PH999", "1"},
			{"", "", ""}, // 全空行要丢弃
			{"250102AAA", "PH000", "2"},
		},
	})

	sheets, err := ReadWorkbook(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(sheets) != 1 {
		t.Fatalf("len(sheets)=%d, want 1", len(sheets))
	}

	sh := sheets[0]
	// 表头要 trim
	if sh.Headers[1] != "Tracking Number" {
		t.Fatalf("Headers[1]=%q, want trimmed", sh.Headers[1])
	}
	if len(sh.Rows) != 2 {
		t.Fatalf("len(rows)=%d, want 2 (empty row dropped)", len(sh.Rows))
	}
	if sh.Rows[0]["Tracking Number"] != "PH999" {
		t.Fatalf("row value lookup by trimmed header failed: %v", sh.Rows[0])
	}
}

func TestReadWorkbook_SkipsHeaderOnlySheet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	writeTestWorkbook(t, path, map[string][][]string{
		"orders": {
			{"Order ID", "Tracking Number"},
		},
	})

	sheets, err := ReadWorkbook(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(sheets) != 0 {
		t.Fatalf("header-only sheet must be skipped, got %d", len(sheets))
	}
}

func TestReadWorkbook_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := ReadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
