// api/schema_lint.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoloader/internal/metadata"
)

// SchemaLint проверяет реестр теми же маппером и модулями, что и генерация.
func (s *Storage) SchemaLint(reg *metadata.Registry) []metadata.Issue {
	return metadata.Lint(reg, s.svc.Checker())
}

func LintHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		reg, _ := storage.Snapshot()
		issues := storage.SchemaLint(reg)
		if issues == nil {
			issues = []metadata.Issue{}
		}
		c.JSON(http.StatusOK, gin.H{
			"issues":   issues,
			"blocking": len(metadata.Blocking(issues)),
		})
	}
}
