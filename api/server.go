package api

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/Aidin1998/walletapi/api/responses"
	"github.com/Aidin1998/walletapi/docs"
)

// Documentation endpoints.
const (
	OpenAPIJSONPath = "/api-docs/openapi.json"
	OpenAPIYAMLPath = "/api-docs/openapi.yaml"
	SwaggerUIPath   = "/swagger-ui"
	MetricsPath     = "/metrics"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Options configures the server.
type Options struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	MetricsEnabled bool
}

// Server represents the API server
type Server struct {
	router *gin.Engine
	logger *zap.Logger
	opts   Options

	openapiJSON []byte
	openapiYAML []byte
}

// NewServer creates a new API server. The OpenAPI document is rendered once
// here; a route table that cannot be documented fails construction.
func NewServer(logger *zap.Logger, opts Options) (*Server, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "walletapi"
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	s := &Server{
		logger: logger,
		opts:   opts,
	}

	doc, err := BuildDocument(opts.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI document: %w", err)
	}
	if s.openapiJSON, err = docs.MarshalJSON(doc); err != nil {
		return nil, fmt.Errorf("failed to render OpenAPI JSON: %w", err)
	}
	if s.openapiYAML, err = docs.MarshalYAML(doc); err != nil {
		return nil, fmt.Errorf("failed to render OpenAPI YAML: %w", err)
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	useJSONFieldNames()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.SetHTMLTemplate(tmpl)

	router.Use(requestIDMiddleware())
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, _ any) {
		responses.InternalServerError(c, "An internal server error occurred")
	}))
	router.Use(otelgin.Middleware(opts.ServiceName))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	if opts.MetricsEnabled {
		requests, err := otel.Meter("github.com/Aidin1998/walletapi/api").Int64Counter(
			"http.server.requests",
			metric.WithDescription("Number of HTTP requests served"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create request counter: %w", err)
		}
		router.Use(metricsMiddleware(requests))
	}

	s.router = router
	s.registerRoutes()
	return s, nil
}

// Router returns the internal Gin engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

// registerRoutes registers the route table and the documentation surface
func (s *Server) registerRoutes() {
	for _, r := range s.routeTable() {
		s.router.Handle(r.Method, ginPath(r.Path), r.handler)
		s.logger.Debug("Registered HTTP handler",
			zap.String("method", r.Method),
			zap.String("path", r.Path))
	}

	s.router.GET(OpenAPIJSONPath, s.openapiJSONHandler)
	s.router.GET(OpenAPIYAMLPath, s.openapiYAMLHandler)
	s.router.GET(SwaggerUIPath, func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, SwaggerUIPath+"/index.html")
	})
	s.router.GET(SwaggerUIPath+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL(OpenAPIJSONPath),
		ginSwagger.DocExpansion("list"),
	))

	if s.opts.MetricsEnabled {
		s.router.GET(MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	s.router.NoRoute(func(c *gin.Context) {
		responses.NotFound(c, fmt.Sprintf("no route for %s %s", c.Request.Method, c.Request.URL.Path))
	})
	s.router.NoMethod(func(c *gin.Context) {
		responses.MethodNotAllowed(c, fmt.Sprintf("%s is not supported on %s", c.Request.Method, c.Request.URL.Path))
	})
}

func (s *Server) openapiJSONHandler(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", s.openapiJSON)
}

func (s *Server) openapiYAMLHandler(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", s.openapiYAML)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
