package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autoloader/internal/sqlgen"
)

// TCAHandler — конфигурация формы таблицы; ?format=php|json|yaml (по умолчанию json).
func TCAHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, res := storage.Snapshot()
		t, ok := tableOr404(c, res)
		if !ok {
			return
		}
		writeTCA(c, t.TCA)
	}
}

// SQLHandler — DDL одной таблицы.
func SQLHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, res := storage.Snapshot()
		t, ok := tableOr404(c, res)
		if !ok {
			return
		}
		c.String(http.StatusOK, t.SQL)
	}
}

// SQLAllHandler — ext_tables.sql целиком; ?extension= сужает до одного расширения.
func SQLAllHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, res := storage.Snapshot()
		ext := strings.TrimSpace(c.Query("extension"))

		var parts []string
		for _, t := range res.Tables {
			if ext != "" && !strings.EqualFold(t.Extension, ext) {
				continue
			}
			parts = append(parts, t.SQL)
		}
		c.String(http.StatusOK, sqlgen.Join(parts...))
	}
}
