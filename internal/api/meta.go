package api

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"autoloader/internal/metadata"
)

// ===== META HANDLERS =====

type metaModelListItem struct {
	Class     string `json:"class"`
	Table     string `json:"table"`
	Extension string `json:"extension"`
	Extends   bool   `json:"extends"`
	Fields    int    `json:"fields"`
	Error     string `json:"error,omitempty"`
}

func MetaListHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		reg, res := storage.Snapshot()
		models := reg.Models()
		out := make([]metaModelListItem, 0, len(models))
		for _, m := range models {
			item := metaModelListItem{
				Class:     m.Class,
				Table:     m.TableName(),
				Extension: m.ExtensionKey(),
				Extends:   m.Extends(),
				Fields:    len(m.Fields),
			}
			for _, f := range res.Failures {
				if slices.Contains(f.Classes, m.Class) {
					item.Error = f.Error
				}
			}
			out = append(out, item)
		}
		c.JSON(http.StatusOK, out)
	}
}

type metaField struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	DB    string `json:"db,omitempty"`
	RTE   bool   `json:"rte,omitempty"`
	Label string `json:"label,omitempty"`
}

type metaModel struct {
	Class     string      `json:"class"`
	Table     string      `json:"table"`
	Extension string      `json:"extension"`
	Extends   bool        `json:"extends"`
	Excludes  []string    `json:"excludes,omitempty"`
	Key       string      `json:"key,omitempty"`
	Fields    []metaField `json:"fields"`
}

// MetaModelHandler — метаданные моделей таблицы. Расширяемую таблицу
// могут описывать несколько моделей, поэтому ответ — список.
func MetaModelHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		reg, _ := storage.Snapshot()
		name := c.Param("table")

		var out []metaModel
		for _, m := range reg.Models() {
			if !sameTable(m, name) {
				continue
			}
			fields := make([]metaField, 0, len(m.Fields))
			for _, f := range m.Fields {
				fields = append(fields, metaField{Name: f.Name, Type: f.Var, DB: f.DB, RTE: f.RTE, Label: f.Label})
			}
			out = append(out, metaModel{
				Class:     m.Class,
				Table:     m.TableName(),
				Extension: m.ExtensionKey(),
				Extends:   m.Extends(),
				Excludes:  append([]string(nil), m.Excludes...),
				Key:       m.Key,
				Fields:    fields,
			})
		}
		if len(out) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found", "table": name})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func sameTable(m *metadata.Model, name string) bool {
	return strings.EqualFold(m.TableName(), name)
}
