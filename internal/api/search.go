package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchRequest 运单搜索请求
type SearchRequest struct {
	TrackingNumber string `json:"trackingNumber" binding:"required"`
}

// Search 在全部表格中检索运单号并记录扫描
// POST /api/search
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trackingNumber is required"})
		return
	}

	result := h.engine.Search(req.TrackingNumber)

	c.JSON(http.StatusOK, gin.H{
		"trackingNumber": req.TrackingNumber,
		"results":        result.Results,
		"error":          result.Error,
		"courierStats":   result.CourierStats,
		"alreadyScanned": result.AlreadyScanned,
	})
}
