package app

import (
	"fmt"
	"sync"

	inquiryHTTP "github.com/portalaudio/cms/internal/inquiry/http"
	inquiryRepository "github.com/portalaudio/cms/internal/inquiry/repository"
	inquiryUseCase "github.com/portalaudio/cms/internal/inquiry/usecase"
)

// inquiryComponents holds the lazily initialized inquiry module components.
type inquiryComponents struct {
	repo        inquiryUseCase.InquiryRepository
	repoInit    sync.Once
	useCase     inquiryUseCase.InquiryUseCase
	useCaseInit sync.Once
	handler     *inquiryHTTP.InquiryHandler
	handlerInit sync.Once
}

// InquiryRepository returns the inquiry repository instance.
func (c *Container) InquiryRepository() (inquiryUseCase.InquiryRepository, error) {
	var err error
	c.inquiry.repoInit.Do(func() {
		c.inquiry.repo, err = c.initInquiryRepository()
		if err != nil {
			c.initErrors["inquiryRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["inquiryRepo"]; exists {
		return nil, storedErr
	}
	return c.inquiry.repo, nil
}

// InquiryUseCase returns the inquiry use case instance.
func (c *Container) InquiryUseCase() (inquiryUseCase.InquiryUseCase, error) {
	var err error
	c.inquiry.useCaseInit.Do(func() {
		c.inquiry.useCase, err = c.initInquiryUseCase()
		if err != nil {
			c.initErrors["inquiryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["inquiryUseCase"]; exists {
		return nil, storedErr
	}
	return c.inquiry.useCase, nil
}

// InquiryHandler returns the HTTP handler for inquiry operations.
func (c *Container) InquiryHandler() (*inquiryHTTP.InquiryHandler, error) {
	var err error
	c.inquiry.handlerInit.Do(func() {
		c.inquiry.handler, err = c.initInquiryHandler()
		if err != nil {
			c.initErrors["inquiryHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["inquiryHandler"]; exists {
		return nil, storedErr
	}
	return c.inquiry.handler, nil
}

// initInquiryRepository creates the inquiry repository based on the database driver.
func (c *Container) initInquiryRepository() (inquiryUseCase.InquiryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for inquiry repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return inquiryRepository.NewPostgreSQLInquiryRepository(db), nil
	case "mysql":
		return inquiryRepository.NewMySQLInquiryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initInquiryUseCase creates the inquiry use case with all its dependencies.
// Product references are resolved against the catalog product repository.
func (c *Container) initInquiryUseCase() (inquiryUseCase.InquiryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for inquiry use case: %w", err)
	}

	inquiryRepo, err := c.InquiryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry repository for inquiry use case: %w", err)
	}

	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for inquiry use case: %w", err)
	}

	baseUseCase := inquiryUseCase.NewInquiryUseCase(txManager, inquiryRepo, productRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for inquiry use case: %w", err)
		}
		return inquiryUseCase.NewInquiryUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initInquiryHandler creates the inquiry HTTP handler with all its dependencies.
func (c *Container) initInquiryHandler() (*inquiryHTTP.InquiryHandler, error) {
	useCase, err := c.InquiryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry use case for inquiry handler: %w", err)
	}

	return inquiryHTTP.NewInquiryHandler(useCase, c.Logger()), nil
}
