package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"spxscan/internal/config"
	"spxscan/internal/server"
	"spxscan/internal/util"
)

var (
	port     = flag.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode  = flag.Bool("dev", false, "开发模式")
	excelDir = flag.String("excelDir", "", "表格文件目录 (覆盖配置文件)")
	dataDir  = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  SPX Scan - 运单核对与扫描统计")
	fmt.Println("==========================================")

	// 加载配置
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *excelDir != "" {
		cfg.Excel.Dir = *excelDir
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 确保表格目录存在
	excelPath, err := config.EnsureExcelDir(cfg)
	if err != nil {
		log.Printf("创建表格目录失败: %v", err)
	} else {
		fmt.Printf("表格目录: %s\n", excelPath)
	}

	// 创建服务器
	srv := server.NewServer(cfg)

	// 构建地址
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	lanURL := fmt.Sprintf("http://%s:%d", util.LocalIP(), cfg.Server.Port)

	// 启动服务器
	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	fmt.Printf("桌面端: %s\n", url)
	fmt.Printf("手机扫描端: %s/scanner (二维码见 %s/api/scanner-qr)\n", lanURL, url)
	fmt.Printf("已加载文件数: %d\n", len(srv.Engine().LoadedFiles()))

	// 打开浏览器
	if !cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("开发模式: 请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	// 等待信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
	if err := srv.Close(); err != nil {
		log.Printf("关闭存储失败: %v", err)
	}
}
