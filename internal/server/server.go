package server

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"spxscan/internal/api"
	"spxscan/internal/config"
	"spxscan/internal/service/recon"
	"spxscan/internal/store"
	"spxscan/internal/util"
	"spxscan/internal/ws"
)

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.Store
	engine *recon.Engine
	hub    *ws.Hub
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化 SQLite Store
	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "spxscan.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 表格目录
	excelDir, err := config.EnsureExcelDir(cfg)
	if err != nil {
		log.Fatalf("Failed to prepare excel dir: %v", err)
	}

	engine := recon.NewEngine(sqliteStore, excelDir)

	// 手机扫描端地址，二维码用局域网 IP
	scannerURL := fmt.Sprintf("http://%s:%d/scanner", util.LocalIP(), cfg.Server.Port)
	apiHandler := api.NewHandler(engine, scannerURL)

	hub := ws.NewHub(engine)
	go hub.Run()

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		engine: engine,
		hub:    hub,
	}

	s.setupRoutes(apiHandler)

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(apiHandler *api.Handler) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 路由
	apiGroup := s.router.Group("/api")
	{
		apiHandler.RegisterRoutes(apiGroup)
	}

	// websocket 推送
	s.router.GET("/ws", func(c *gin.Context) {
		ws.ServeWs(s.hub, c.Writer, c.Request)
	})

	// 服务信息
	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "spxscan",
			"files":   len(s.engine.LoadedFiles()),
		})
	})
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Engine 获取核对引擎（用于测试）
func (s *Server) Engine() *recon.Engine {
	return s.engine
}

// Close 关闭底层存储
func (s *Server) Close() error {
	return s.store.Close()
}
