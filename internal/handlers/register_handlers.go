package handlers

import (
	"github.com/SscSPs/sya_logistica/cmd/docs"
	portssvc "github.com/SscSPs/sya_logistica/internal/core/ports/services"
	"github.com/SscSPs/sya_logistica/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// apiPrefixes lists the mount points of the API. The mobile form calls the
// /api/logistica variants, the desktop utility the plain ones.
var apiPrefixes = []string{"/api", "/api/logistica"}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiMiddleware ...gin.HandlerFunc,
) {
	// Add health check route
	r.GET("/health", getHealth)

	for _, prefix := range apiPrefixes {
		api := r.Group(prefix, apiMiddleware...)
		RegisterMaterialRoutes(api, services.Catalog)
		RegisterRequirementRoutes(api, services.Submission, services.Retrieval)
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
