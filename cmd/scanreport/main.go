package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"

	"spxscan/internal/service/recon"
	"spxscan/internal/store"
)

// scanreport 在终端打印各快递商的扫描进度
// 仓库现场不方便开仪表盘时用它快速核对剩余量
func main() {
	var (
		dataDir  = flag.String("data", "data", "数据目录（spxscan.db 所在位置）")
		excelDir = flag.String("excel", "excel_files", "表格文件目录")
	)
	flag.Parse()

	st, err := store.New(filepath.Join(*dataDir, "spxscan.db"))
	if err != nil {
		log.Fatalf("打开数据库失败: %v", err)
	}
	defer st.Close()

	engine := recon.NewEngine(st, *excelDir)

	files := engine.LoadedFiles()
	if len(files) == 0 {
		fmt.Printf("表格目录 %s 下没有文件\n", *excelDir)
		return
	}
	fmt.Printf("已加载 %d 个文件\n\n", len(files))

	stats := engine.CourierStats()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("快递商", "总单数", "已扫描", "剩余")

	totalAll, scannedAll := 0, 0
	for _, stat := range stats {
		table.Append(stat.Courier, stat.Total, stat.Scanned, stat.Total-stat.Scanned)
		totalAll += stat.Total
		scannedAll += stat.Scanned
	}

	if err := table.Render(); err != nil {
		log.Fatalf("渲染表格失败: %v", err)
	}

	fmt.Printf("\n合计: %d / %d 已扫描，剩余 %d\n", scannedAll, totalAll, totalAll-scannedAll)
}
