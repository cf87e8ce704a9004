// Package http provides the API HTTP server, router and middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/portalaudio/cms/internal/auth/http"
	blogHTTP "github.com/portalaudio/cms/internal/blog/http"
	catalogHTTP "github.com/portalaudio/cms/internal/catalog/http"
	dealerHTTP "github.com/portalaudio/cms/internal/dealer/http"
	inquiryHTTP "github.com/portalaudio/cms/internal/inquiry/http"
	mediaHTTP "github.com/portalaudio/cms/internal/media/http"
	testimonialHTTP "github.com/portalaudio/cms/internal/testimonial/http"
	userHTTP "github.com/portalaudio/cms/internal/user/http"
)

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The router is assembled separately via
// SetupRouter once the handlers exist.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handlers groups the domain handlers registered on the router.
type Handlers struct {
	Auth        *authHTTP.AuthHandler
	User        *userHTTP.UserHandler
	Category    *catalogHTTP.CategoryHandler
	Product     *catalogHTTP.ProductHandler
	Dealer      *dealerHTTP.DealerHandler
	Testimonial *testimonialHTTP.TestimonialHandler
	Inquiry     *inquiryHTTP.InquiryHandler
	Post        *blogHTTP.PostHandler
	Media       *mediaHTTP.MediaHandler
}

// Middleware groups the cross-cutting middleware applied to the router.
// Authentication and RequireAdmin are required; the rest are optional and
// skipped when nil.
type Middleware struct {
	Authentication gin.HandlerFunc
	RequireAdmin   gin.HandlerFunc
	LoginRateLimit gin.HandlerFunc
	CORS           gin.HandlerFunc
	Metrics        gin.HandlerFunc
}

// SetupRouter assembles the Gin router with all routes and middleware.
func (s *Server) SetupRouter(handlers Handlers, mw Middleware) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))
	if mw.Metrics != nil {
		router.Use(mw.Metrics)
	}
	if mw.CORS != nil {
		router.Use(mw.CORS)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Public catalog and content endpoints
	v1.GET("/categories", handlers.Category.ListCategoriesHandler)
	v1.GET("/categories/:slug", handlers.Category.GetCategoryHandler)
	v1.GET("/products", handlers.Product.ListProductsHandler)
	v1.GET("/products/:slug", handlers.Product.GetProductHandler)
	v1.GET("/dealers", handlers.Dealer.ListDealersHandler)
	v1.GET("/testimonials", handlers.Testimonial.ListTestimonialsHandler)
	v1.GET("/blog", handlers.Post.ListPublishedPostsHandler)
	v1.GET("/blog/:slug", handlers.Post.GetPublishedPostHandler)

	// Public inquiry submission
	v1.POST("/inquiries", handlers.Inquiry.SubmitInquiryHandler)

	// Session endpoints
	auth := v1.Group("/auth")
	if mw.LoginRateLimit != nil {
		auth.POST("/login", mw.LoginRateLimit, handlers.Auth.LoginHandler)
	} else {
		auth.POST("/login", handlers.Auth.LoginHandler)
	}
	auth.POST("/logout", handlers.Auth.LogoutHandler)
	auth.GET("/me", mw.Authentication, handlers.Auth.MeHandler)

	// Admin endpoints
	admin := v1.Group("/admin")
	admin.Use(mw.Authentication, mw.RequireAdmin)

	admin.POST("/users", handlers.User.CreateUserHandler)
	admin.GET("/users", handlers.User.ListUsersHandler)
	admin.DELETE("/users/:id", handlers.User.DeleteUserHandler)

	admin.POST("/categories", handlers.Category.CreateCategoryHandler)
	admin.PUT("/categories/:id", handlers.Category.UpdateCategoryHandler)
	admin.DELETE("/categories/:id", handlers.Category.DeleteCategoryHandler)

	admin.POST("/products", handlers.Product.CreateProductHandler)
	admin.PUT("/products/:id", handlers.Product.UpdateProductHandler)
	admin.DELETE("/products/:id", handlers.Product.DeleteProductHandler)

	admin.GET("/dealers", handlers.Dealer.ListAllDealersHandler)
	admin.GET("/dealers/:id", handlers.Dealer.GetDealerHandler)
	admin.POST("/dealers", handlers.Dealer.CreateDealerHandler)
	admin.PUT("/dealers/:id", handlers.Dealer.UpdateDealerHandler)
	admin.DELETE("/dealers/:id", handlers.Dealer.DeleteDealerHandler)

	admin.GET("/testimonials/:id", handlers.Testimonial.GetTestimonialHandler)
	admin.POST("/testimonials", handlers.Testimonial.CreateTestimonialHandler)
	admin.PUT("/testimonials/:id", handlers.Testimonial.UpdateTestimonialHandler)
	admin.DELETE("/testimonials/:id", handlers.Testimonial.DeleteTestimonialHandler)

	admin.GET("/inquiries", handlers.Inquiry.ListInquiriesHandler)
	admin.GET("/inquiries/:id", handlers.Inquiry.GetInquiryHandler)
	admin.PUT("/inquiries/:id", handlers.Inquiry.UpdateInquiryStatusHandler)
	admin.DELETE("/inquiries/:id", handlers.Inquiry.DeleteInquiryHandler)

	admin.GET("/blog", handlers.Post.ListAllPostsHandler)
	admin.GET("/blog/:id", handlers.Post.GetPostHandler)
	admin.POST("/blog", handlers.Post.CreatePostHandler)
	admin.PUT("/blog/:id", handlers.Post.UpdatePostHandler)
	admin.DELETE("/blog/:id", handlers.Post.DeletePostHandler)

	admin.POST("/media", handlers.Media.UploadMediaHandler)

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness, checking the database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	status := "ready"
	code := http.StatusOK

	if s.db == nil {
		components["database"] = "error"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		components["database"] = "error"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	} else {
		components["database"] = "ok"
	}

	c.JSON(code, gin.H{"status": status, "components": components})
}
