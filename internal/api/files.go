package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListFiles 列出表格目录下当前可用的文件
// GET /api/files
func (h *Handler) ListFiles(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.LoadedFiles())
}
