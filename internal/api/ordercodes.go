package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SaveOrderCodeRequest 保存订单代号请求
type SaveOrderCodeRequest struct {
	ParentSku   string `json:"parentSku" binding:"required"`
	ProductName string `json:"productName"`
	OrderCode   string `json:"orderCode" binding:"required"`
}

// ListOrderCodes 列出全部订单代号映射
// GET /api/order-codes
func (h *Handler) ListOrderCodes(c *gin.Context) {
	codes, err := h.engine.Store().ListOrderCodes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, codes)
}

// SaveOrderCode 保存订单代号（按 parent SKU 覆盖）
// POST /api/order-code
func (h *Handler) SaveOrderCode(c *gin.Context) {
	var req SaveOrderCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parentSku and orderCode are required"})
		return
	}

	if err := h.engine.Store().UpsertOrderCode(req.ParentSku, req.ProductName, req.OrderCode); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteOrderCode 按 id 删除订单代号
// DELETE /api/order-code/:id
func (h *Handler) DeleteOrderCode(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	found, err := h.engine.Store().DeleteOrderCode(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		// 不存在的 id 是软失败，不算服务端错误
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "order code not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
