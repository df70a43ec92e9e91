package api

import (
	"github.com/gin-gonic/gin"

	"spxscan/internal/service/recon"
)

// Handler API 处理器
type Handler struct {
	engine *recon.Engine
	// scannerURL 手机扫描端的局域网地址，用于生成连接二维码
	scannerURL string
}

// NewHandler 创建 API 处理器
func NewHandler(engine *recon.Engine, scannerURL string) *Handler {
	return &Handler{
		engine:     engine,
		scannerURL: scannerURL,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 运单搜索
	router.POST("/search", h.Search)

	// 文件列表
	router.GET("/files", h.ListFiles)

	// 订单代号维护
	router.GET("/order-codes", h.ListOrderCodes)
	router.POST("/order-code", h.SaveOrderCode)
	router.DELETE("/order-code/:id", h.DeleteOrderCode)

	// 扫描状态
	router.GET("/courier-stats", h.CourierStats)
	router.GET("/scanned-tracking", h.ListScannedTracking)
	router.POST("/scanned/reset", h.ResetScanned)

	// 清单核对
	router.POST("/compare", h.Compare)

	// 手机扫描端连接二维码
	router.GET("/scanner-qr", h.ScannerQR)
}
