package app

import (
	"fmt"

	authDomain "github.com/portalaudio/cms/internal/auth/domain"
	authHTTP "github.com/portalaudio/cms/internal/auth/http"
	"github.com/portalaudio/cms/internal/http"
	"github.com/portalaudio/cms/internal/metrics"
)

// initHTTPServer creates the HTTP server with all routes and middleware wired.
func (c *Container) initHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	authHandler, err := c.AuthHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth handler: %w", err)
	}

	userHandler, err := c.UserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get user handler: %w", err)
	}

	categoryHandler, err := c.CategoryHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get category handler: %w", err)
	}

	productHandler, err := c.ProductHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get product handler: %w", err)
	}

	dealerHandler, err := c.DealerHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get dealer handler: %w", err)
	}

	testimonialHandler, err := c.TestimonialHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial handler: %w", err)
	}

	inquiryHandler, err := c.InquiryHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry handler: %w", err)
	}

	postHandler, err := c.PostHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get post handler: %w", err)
	}

	mediaHandler, err := c.MediaHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get media handler: %w", err)
	}

	authUC, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for middleware: %w", err)
	}

	mw := http.Middleware{
		Authentication: authHTTP.AuthenticationMiddleware(authUC, c.config.SessionCookieName, c.Logger()),
		RequireAdmin:   authHTTP.RequireRole(authDomain.RoleAdmin, c.Logger()),
		CORS:           http.CORSMiddleware(c.config.CORSEnabled, c.config.CORSAllowOrigins, c.Logger()),
	}

	if c.config.RateLimitLoginEnabled {
		mw.LoginRateLimit = authHTTP.LoginRateLimitMiddleware(
			c.config.RateLimitLoginRequestsPerSec,
			c.config.RateLimitLoginBurst,
			c.Logger(),
		)
	}

	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		mw.Metrics = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(http.Handlers{
		Auth:        authHandler,
		User:        userHandler,
		Category:    categoryHandler,
		Product:     productHandler,
		Dealer:      dealerHandler,
		Testimonial: testimonialHandler,
		Inquiry:     inquiryHandler,
		Post:        postHandler,
		Media:       mediaHandler,
	}, mw)

	return server, nil
}
