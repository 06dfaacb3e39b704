package bootstrap

import (
	httpapi "github.com/devsync-community/devsync-backend/internal/api/http"
	communityhttp "github.com/devsync-community/devsync-backend/internal/community/http"
	"github.com/devsync-community/devsync-backend/internal/community/service"
	"github.com/devsync-community/devsync-backend/internal/logger"
	"github.com/devsync-community/devsync-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Log            *logger.Logger

	Projects      *service.ProjectService
	Notifications *service.NotificationService
	Analysis      *service.AnalysisService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: dep.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Request-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(middleware.RequestID(dep.Log))

	communityhttp.New(dep.Projects, dep.Notifications, dep.Analysis).Register(api)

	return r
}
