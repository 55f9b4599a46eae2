// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, rate limiting, and the admin session gate.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/medigo-care/go-leads-backend/docs" // swagger spec registration
	"github.com/medigo-care/go-leads-backend/internal/config"
	"github.com/medigo-care/go-leads-backend/internal/domain"
	"github.com/medigo-care/go-leads-backend/internal/http/handlers"
	"github.com/medigo-care/go-leads-backend/internal/http/middleware"
	"github.com/medigo-care/go-leads-backend/internal/repo"
	"github.com/medigo-care/go-leads-backend/internal/services"
)

// quotationRepoShim adapts the repository free functions to the
// services.QuotationRepo interface expected by the QuotationService. This
// keeps services decoupled from the concrete repo package while reusing
// existing functions.
type quotationRepoShim struct{}

// CreateQuotationRequest proxies repo.CreateQuotationRequest.
func (quotationRepoShim) CreateQuotationRequest(ctx context.Context, db *gorm.DB, q *domain.QuotationRequest) error {
	return repo.CreateQuotationRequest(ctx, db, q)
}

// ListQuotationRequests proxies repo.ListQuotationRequests.
func (quotationRepoShim) ListQuotationRequests(ctx context.Context, db *gorm.DB, limit int) ([]domain.QuotationRequest, error) {
	return repo.ListQuotationRequests(ctx, db, limit)
}

// GetQuotationRequest proxies repo.GetQuotationRequest.
func (quotationRepoShim) GetQuotationRequest(ctx context.Context, db *gorm.DB, id uint) (*domain.QuotationRequest, error) {
	return repo.GetQuotationRequest(ctx, db, id)
}

// contactRepoShim adapts the repository free functions to services.ContactRepo.
type contactRepoShim struct{}

// CreateContactRequest proxies repo.CreateContactRequest.
func (contactRepoShim) CreateContactRequest(ctx context.Context, db *gorm.DB, c *domain.ContactRequest) error {
	return repo.CreateContactRequest(ctx, db, c)
}

// ListContactRequests proxies repo.ListContactRequests.
func (contactRepoShim) ListContactRequests(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactRequest, error) {
	return repo.ListContactRequests(ctx, db, limit)
}

// UpdateContactRequestStatus proxies repo.UpdateContactRequestStatus.
func (contactRepoShim) UpdateContactRequestStatus(ctx context.Context, db *gorm.DB, id uint, status string) (*domain.ContactRequest, error) {
	return repo.UpdateContactRequestStatus(ctx, db, id, status)
}

// sessionRepoShim adapts the repository free functions to services.SessionRepo.
type sessionRepoShim struct{}

// CreateSession proxies repo.CreateSession.
func (sessionRepoShim) CreateSession(ctx context.Context, db *gorm.DB, ttl time.Duration) (*domain.Session, error) {
	return repo.CreateSession(ctx, db, ttl)
}

// GetSession proxies repo.GetSession.
func (sessionRepoShim) GetSession(ctx context.Context, db *gorm.DB, id string, now time.Time) (*domain.Session, error) {
	return repo.GetSession(ctx, db, id, now)
}

// DeleteSession proxies repo.DeleteSession.
func (sessionRepoShim) DeleteSession(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteSession(ctx, db, id)
}

// catalogRepoShim adapts the repository free functions to services.CatalogRepo.
type catalogRepoShim struct{}

// ListCatalog proxies repo.ListCatalog.
func (catalogRepoShim) ListCatalog(ctx context.Context, db *gorm.DB) ([]domain.CatalogItem, error) {
	return repo.ListCatalog(ctx, db)
}

// UpdateCatalogItem proxies repo.UpdateCatalogItem.
func (catalogRepoShim) UpdateCatalogItem(ctx context.Context, db *gorm.DB, id string, basePrice *int, commission *float64) (*domain.CatalogItem, error) {
	return repo.UpdateCatalogItem(ctx, db, id, basePrice, commission)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, and then mounts
// the public and admin APIs under the configured base path.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression (skipping /metrics)
//  7. Metrics
//  8. Rate limiter (per client IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction. Lead payloads are PII-heavy, so
	// emails/phones/UUIDs never reach the logs in clear text.
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress responses except the Prometheus scrape
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 9) CORS posture. The admin session travels in a cookie, so credentials
	// are only allowed with an explicit origin allowlist.
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (disabled by default; enable via SWAGGER_ENABLED)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db
	quotationSvc := services.NewQuotationService(db, quotationRepoShim{})
	contactSvc := services.NewContactService(db, contactRepoShim{})
	authSvc := services.NewAuthService(db, sessionRepoShim{}, cfg.AdminPassword, cfg.AdminPasswordHash, cfg.SessionTTL)
	catalogSvc := services.NewCatalogService(db, catalogRepoShim{})
	h := handlers.New(quotationSvc, contactSvc, authSvc, catalogSvc)

	gate := middleware.AdminGate(authSvc.IsAuthenticated)

	api := groupWithPrefix(r, cfg.APIBasePath) // e.g. "/api"
	{
		// Public lead intake and recommendation preview
		api.POST("/quotation-requests", h.CreateQuotationRequest)
		api.POST("/contact-requests", h.CreateContactRequest)
		api.POST("/recommendations", h.PreviewRecommendation)
		api.GET("/packages", h.ListPackages)

		// Admin session lifecycle
		api.POST("/admin/login", h.AdminLogin)
		api.POST("/admin/logout", h.AdminLogout)
		api.GET("/admin/status", h.AdminStatus)

		// Admin-only lead and catalog management
		protected := api.Group("", gate)
		{
			protected.GET("/quotation-requests", h.ListQuotationRequests)
			protected.GET("/quotation-requests/:id/recommendation", h.GetQuotationRecommendation)
			protected.GET("/contact-requests", h.ListContactRequests)
			protected.PATCH("/contact-requests/:id/status", h.UpdateContactRequestStatus)
			protected.GET("/admin/treatments", h.ListTreatments)
			protected.PATCH("/admin/treatments/:id", h.UpdateTreatment)
		}
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
