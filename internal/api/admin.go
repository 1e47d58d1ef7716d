package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type reloadReq struct {
	ModelsDir string `json:"models_dir"` // каталог с *.yaml; пусто — текущий
}

func AdminReloadHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reloadReq
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}

		dir := strings.TrimSpace(req.ModelsDir)
		res, issues, err := storage.Reload(dir)
		switch {
		case errors.Is(err, ErrBlocked):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "metadata has blocking issues",
				"issues": issues,
				"hint":   "fix model metadata and retry",
			})
			return
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Metadata load error", "details": err.Error()})
			return
		}

		c.Header(buildHeader, res.ID)
		c.JSON(http.StatusOK, gin.H{
			"ok":       true,
			"build":    res.ID,
			"tables":   len(res.Tables),
			"failures": res.Failures,
		})
	}
}
