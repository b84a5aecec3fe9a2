package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ressKim-io/text-haptics/api-service/internal/adapter/http/handler"
	"github.com/ressKim-io/text-haptics/api-service/internal/adapter/http/middleware"
	"github.com/ressKim-io/text-haptics/api-service/internal/domain/repository"
	"github.com/ressKim-io/text-haptics/api-service/internal/usecase"
)

// Dependencies are the collaborators the router wires into handlers.
// DB, Redis and Gatherer are optional.
type Dependencies struct {
	ClassifyUC   usecase.ClassifyUsecase
	Cache        repository.ResultCache
	DB           *gorm.DB
	Redis        *redis.Client
	Gatherer     prometheus.Gatherer
	Logger       *zap.Logger
	AuthKey      string
	AudioDir     string
	TaxonomyMode string
}

// Setup creates and configures the Gin router
func Setup(deps Dependencies) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Redis, deps.Cache, deps.TaxonomyMode)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	} else {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	auth := middleware.Auth(deps.AuthKey)
	classifyHandler := handler.NewClassifyHandler(deps.ClassifyUC)
	indexHandler := handler.NewIndexHandler(deps.AuthKey)

	// Page, classification and audio cues
	router.GET("/", indexHandler.Index)
	router.POST("/classify", auth, classifyHandler.Classify)
	router.Static("/audio", deps.AudioDir)

	// API v1 routes
	v1 := router.Group("/api/v1", auth)
	{
		v1.GET("/taxonomy", classifyHandler.Taxonomy)

		classifications := v1.Group("/classifications")
		{
			classifications.GET("", classifyHandler.ListClassifications)
			classifications.GET("/:id", classifyHandler.GetClassification)
		}
	}

	return router
}
