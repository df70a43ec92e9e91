package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CourierStats 获取全部快递商扫描进度
// GET /api/courier-stats
func (h *Handler) CourierStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.CourierStats())
}

// ListScannedTracking 列出已扫描的全部运单号
// GET /api/scanned-tracking
func (h *Handler) ListScannedTracking(c *gin.Context) {
	tracking, err := h.engine.Store().ListScannedTracking()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tracking)
}

// ResetScanned 清空全部扫描记录
// POST /api/scanned/reset
func (h *Handler) ResetScanned(c *gin.Context) {
	if err := h.engine.Store().ResetScanned(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
