package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// ScannerQR 生成手机扫描端地址的二维码
// GET /api/scanner-qr
func (h *Handler) ScannerQR(c *gin.Context) {
	png, err := qrcode.Encode(h.scannerURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
