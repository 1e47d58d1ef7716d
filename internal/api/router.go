// api/router.go
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const buildHeader = "X-Build-ID"

// NewRouter собирает маршруты. Каждый ответ несёт идентификатор сборки, с которой он отдан.
func NewRouter(storage *Storage, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log), buildID(storage))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/models", MetaListHandler(storage))
		apiGroup.GET("/models/:table", MetaModelHandler(storage))
		apiGroup.GET("/tca/:table", TCAHandler(storage))
		apiGroup.GET("/sql", SQLAllHandler(storage))
		apiGroup.GET("/sql/:table", SQLHandler(storage))
		apiGroup.GET("/lint", LintHandler(storage))

		apiGroup.POST("/admin/reload", AdminReloadHandler(storage))
	}
	return r
}

func RunServer(addr string, storage *Storage, log *zap.Logger) error {
	return NewRouter(storage, log).Run(addr)
}

func buildID(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, res := storage.Snapshot()
		c.Header(buildHeader, res.ID)
		c.Next()
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
