package httpserver

import (
	memberHTTP "member-admin/internal/member/delivery/http"
	"member-admin/internal/middleware"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "member-admin/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api = "/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.logger, srv.discord)
	srv.gin.Use(mw.Recovery(), middleware.CORS(middleware.DefaultCORSConfig()), mw.RequestLog())

	// Health check endpoints
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Metrics
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Member table: HTML pages at the root, JSON under /api/v1
	memberH := memberHTTP.New(srv.logger, srv.memberUC, srv.discord)
	memberH.RegisterPages(srv.gin)
	memberH.RegisterRoutes(srv.gin.Group(Api))

	return nil
}
