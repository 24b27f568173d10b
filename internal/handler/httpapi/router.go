package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsmonitor/internal/logger"
	"newsmonitor/internal/metrics"
	"newsmonitor/internal/usecase"
)

var actionRoutes = []string{"/", "/:action", "/:action/:param1", "/:action/:param1/:param2"}

// NewRouter wires the action routes, under both / and /run, plus health
// and metrics endpoints.
func NewRouter(service *usecase.Service, log *logger.Logger) *gin.Engine {
	r := gin.New()
	// route parameters stay percent-encoded so a full URL fits in one segment
	r.UseRawPath = true
	r.UnescapePathValues = false

	r.Use(recovery(log))
	r.Use(requestLogger(log))
	r.Use(metrics.PrometheusMiddleware())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", RequestIDHeader},
		ExposeHeaders:   []string{RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/health", healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := NewActionHandler(service)
	for _, prefix := range []string{"", "/run"} {
		for _, route := range actionRoutes {
			path := prefix + route
			if prefix != "" && route == "/" {
				path = prefix
			}
			r.GET(path, h.Run)
			r.POST(path, h.Run)
		}
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": metrics.ServiceName})
}

func recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		log.Error("uncaught panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  usecase.GenericFailureMessage,
		})
	})
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("%s %s %d %s %s", c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(),
			time.Since(start).Round(time.Millisecond), c.Writer.Header().Get(RequestIDHeader))
	}
}
