package api

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autoloader/internal/generate"
	"autoloader/internal/smartobject"
	"autoloader/internal/tca"
)

var contentTypes = map[tca.Format]string{
	tca.FormatPHP:  "text/x-php; charset=utf-8",
	tca.FormatJSON: "application/json; charset=utf-8",
	tca.FormatYAML: "application/yaml; charset=utf-8",
}

// tableOr404 отвечает сам, если таблицы нет или она не собралась.
func tableOr404(c *gin.Context, res *generate.Result) (*smartobject.Table, bool) {
	name := c.Param("table")
	t, failure := lookupTable(res, strings.TrimSpace(c.Query("extension")), name)
	if failure != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Table generation failed",
			"table":   failure.Table,
			"model":   failure.Class,
			"details": failure.Error,
		})
		return nil, false
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found", "table": name})
		return nil, false
	}
	return t, true
}

func writeTCA(c *gin.Context, conf tca.Config) {
	f := tca.FormatJSON
	if q := c.Query("format"); q != "" {
		parsed, err := tca.ParseFormat(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		f = parsed
	}
	var buf bytes.Buffer
	if err := tca.Encode(&buf, conf, f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encode failed", "details": err.Error()})
		return
	}
	c.Data(http.StatusOK, contentTypes[f], buf.Bytes())
}
