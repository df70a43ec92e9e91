package recon

import (
	"os"
	"strings"

	"spxscan/internal/store"
)

// Engine 运单核对引擎
// 每次操作都重新枚举表格目录并重新读取文件：文件变动不频繁，
// 正确性优先于缓存，也让并发请求之间不共享可变状态
type Engine struct {
	store    *store.Store
	excelDir string
}

// NewEngine 创建引擎
func NewEngine(st *store.Store, excelDir string) *Engine {
	return &Engine{
		store:    st,
		excelDir: excelDir,
	}
}

// Store 返回底层存储（供 API 层直接做映射维护）
func (e *Engine) Store() *store.Store {
	return e.store
}

// ExcelDir 返回表格目录
func (e *Engine) ExcelDir() string {
	return e.excelDir
}

// LoadedFiles 列出当前可用的表格文件名
func (e *Engine) LoadedFiles() []string {
	entries, err := os.ReadDir(e.excelDir)
	if err != nil {
		return []string{}
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		lower := strings.ToLower(name)
		if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls") {
			files = append(files, name)
		}
	}

	return files
}
