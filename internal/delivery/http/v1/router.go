package v1

import (
	"net/http"
	"time"

	"go-sirius-backend/config"
	"go-sirius-backend/internal/delivery/http/middleware"
	"go-sirius-backend/internal/delivery/http/response"
	"go-sirius-backend/internal/domain"
	"go-sirius-backend/pkg/i18n"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC  domain.ContactUsecase
	AssistUC   domain.AssistUsecase
	Translator *i18n.Translator
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimitMiddleware())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes with a strict per-IP limit (form submissions are manual)
	contact := v1.Group("")
	contact.Use(middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		deps.Config.RateLimitContactThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	NewContactHandler(contact, deps.ContactUC, deps.Translator)
	NewAssistHandler(contact, deps.AssistUC, deps.Translator)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
