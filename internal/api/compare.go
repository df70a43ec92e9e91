package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CompareRequest 清单核对请求，list 为换行分隔的运单号/订单号
type CompareRequest struct {
	List string `json:"list"`
}

// Compare 核对粘贴的运单清单与扫描状态
// POST /api/compare
func (h *Handler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.List == "" {
		c.JSON(http.StatusOK, gin.H{
			"error":     "No list provided",
			"remaining": []string{},
			"scanned":   []string{},
		})
		return
	}

	result, err := h.engine.CompareList(req.List)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
