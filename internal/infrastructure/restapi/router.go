package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"jurisdiction_gateway/internal/infrastructure/configloader"
)

// Handlers groups every API handler.
type Handlers struct {
	Contracts     *ContractHandler
	Cases         *CaseHandler
	Jurisdictions *JurisdictionHandler
	Profiles      *ProfileHandler
	Network       *NetworkHandler
}

// RouterOptions configures the ambient middleware.
type RouterOptions struct {
	Logger    *zap.Logger
	RateLimit configloader.RateLimitConfig
	Swagger   configloader.SwaggerConfig
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(h Handlers, opts RouterOptions) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader}
	corsConfig.ExposeHeaders = []string{requestIDHeader}
	router.Use(cors.New(corsConfig))

	router.Use(RequestIDMiddleware())
	if opts.Logger != nil {
		router.Use(ZapLoggerMiddleware(opts.Logger))
	}
	router.Use(gin.Recovery())
	router.Use(MetricsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if opts.Swagger.Enabled {
		router.StaticFile("/docs/swagger.yaml", opts.Swagger.SpecFile)
		swaggerURL := ginSwagger.URL("/docs/swagger.yaml")
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	}

	v1 := router.Group("/api/v1")
	if opts.RateLimit.RequestsPerSecond > 0 {
		v1.Use(RateLimitMiddleware(rate.NewLimiter(rate.Limit(opts.RateLimit.RequestsPerSecond), opts.RateLimit.Burst)))
	}
	{
		v1.GET("/network", h.Network.GetNetworkHandler)
		v1.GET("/networks", h.Network.ListNetworksHandler)

		v1.GET("/contracts", h.Contracts.ListContractsHandler)
		v1.POST("/contracts/:contract/:address/call", h.Contracts.CallHandler)
		v1.POST("/contracts/:contract/:address/transact", h.Contracts.TransactHandler)
		v1.POST("/contracts/:contract/:address/batch", h.Contracts.BatchHandler)

		v1.POST("/cases/:address/posts", h.Cases.AddPostHandler)
		v1.POST("/cases/:address/stage/:stage", h.Cases.SetStageHandler)
		v1.GET("/cases/:address/stage", h.Cases.GetStageHandler)

		v1.POST("/jurisdictions/:address/rules", h.Jurisdictions.AddRuleHandler)
		v1.PUT("/jurisdictions/:address/rules/:id", h.Jurisdictions.UpdateRuleHandler)
		v1.GET("/jurisdictions/:address/rules/:id", h.Jurisdictions.GetRuleHandler)

		v1.POST("/profiles/:tokenId/reputation", h.Profiles.AddReputationHandler)
		v1.GET("/profiles/:tokenId/reputation", h.Profiles.GetReputationHandler)
	}

	return router
}
