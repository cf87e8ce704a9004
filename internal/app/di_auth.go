package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/portalaudio/cms/internal/auth/http"
	authService "github.com/portalaudio/cms/internal/auth/service"
	authUseCase "github.com/portalaudio/cms/internal/auth/usecase"
)

// authComponents holds the lazily initialized auth module components.
type authComponents struct {
	passwordService     authService.PasswordService
	passwordServiceInit sync.Once
	sessionService      authService.SessionService
	sessionServiceInit  sync.Once
	useCase             authUseCase.AuthUseCase
	useCaseInit         sync.Once
	handler             *authHTTP.AuthHandler
	handlerInit         sync.Once
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.auth.passwordServiceInit.Do(func() {
		c.auth.passwordService = authService.NewPasswordService()
	})
	return c.auth.passwordService
}

// SessionService returns the signed session token service.
func (c *Container) SessionService() (authService.SessionService, error) {
	var err error
	c.auth.sessionServiceInit.Do(func() {
		c.auth.sessionService, err = authService.NewSessionService(
			c.config.SessionSecret,
			c.config.SessionExpiration,
		)
		if err != nil {
			c.initErrors["sessionService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionService"]; exists {
		return nil, storedErr
	}
	return c.auth.sessionService, nil
}

// AuthUseCase returns the authentication use case instance.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.auth.useCaseInit.Do(func() {
		c.auth.useCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.auth.useCase, nil
}

// AuthHandler returns the HTTP handler for session operations.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.auth.handlerInit.Do(func() {
		c.auth.handler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.auth.handler, nil
}

// initAuthUseCase creates the auth use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	sessionService, err := c.SessionService()
	if err != nil {
		return nil, fmt.Errorf("failed to get session service for auth use case: %w", err)
	}

	baseUseCase := authUseCase.NewAuthUseCase(userRepo, c.PasswordService(), sessionService)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthHandler creates the auth HTTP handler with all its dependencies.
func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	useCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}

	return authHTTP.NewAuthHandler(
		useCase,
		c.config.SessionCookieName,
		c.config.SessionCookieSecure,
		c.Logger(),
	), nil
}
