package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/pkg/metrics"
)

// SetupMetrics serves the Prometheus registry of m at path
func SetupMetrics(router *gin.Engine, path string, m *metrics.Metrics) {
	router.GET(path, gin.WrapH(m.Handler()))
}
