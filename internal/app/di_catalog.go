package app

import (
	"fmt"
	"sync"

	catalogHTTP "github.com/portalaudio/cms/internal/catalog/http"
	catalogRepository "github.com/portalaudio/cms/internal/catalog/repository"
	catalogUseCase "github.com/portalaudio/cms/internal/catalog/usecase"
)

// catalogComponents holds the lazily initialized catalog module components.
type catalogComponents struct {
	categoryRepo        catalogUseCase.CategoryRepository
	categoryRepoInit    sync.Once
	productRepo         catalogUseCase.ProductRepository
	productRepoInit     sync.Once
	categoryUseCase     catalogUseCase.CategoryUseCase
	categoryUseCaseInit sync.Once
	productUseCase      catalogUseCase.ProductUseCase
	productUseCaseInit  sync.Once
	categoryHandler     *catalogHTTP.CategoryHandler
	categoryHandlerInit sync.Once
	productHandler      *catalogHTTP.ProductHandler
	productHandlerInit  sync.Once
}

// CategoryRepository returns the category repository instance.
func (c *Container) CategoryRepository() (catalogUseCase.CategoryRepository, error) {
	var err error
	c.catalog.categoryRepoInit.Do(func() {
		c.catalog.categoryRepo, err = c.initCategoryRepository()
		if err != nil {
			c.initErrors["categoryRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryRepo"]; exists {
		return nil, storedErr
	}
	return c.catalog.categoryRepo, nil
}

// ProductRepository returns the product repository instance.
func (c *Container) ProductRepository() (catalogUseCase.ProductRepository, error) {
	var err error
	c.catalog.productRepoInit.Do(func() {
		c.catalog.productRepo, err = c.initProductRepository()
		if err != nil {
			c.initErrors["productRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productRepo"]; exists {
		return nil, storedErr
	}
	return c.catalog.productRepo, nil
}

// CategoryUseCase returns the category use case instance.
func (c *Container) CategoryUseCase() (catalogUseCase.CategoryUseCase, error) {
	var err error
	c.catalog.categoryUseCaseInit.Do(func() {
		c.catalog.categoryUseCase, err = c.initCategoryUseCase()
		if err != nil {
			c.initErrors["categoryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryUseCase"]; exists {
		return nil, storedErr
	}
	return c.catalog.categoryUseCase, nil
}

// ProductUseCase returns the product use case instance.
func (c *Container) ProductUseCase() (catalogUseCase.ProductUseCase, error) {
	var err error
	c.catalog.productUseCaseInit.Do(func() {
		c.catalog.productUseCase, err = c.initProductUseCase()
		if err != nil {
			c.initErrors["productUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productUseCase"]; exists {
		return nil, storedErr
	}
	return c.catalog.productUseCase, nil
}

// CategoryHandler returns the HTTP handler for category operations.
func (c *Container) CategoryHandler() (*catalogHTTP.CategoryHandler, error) {
	var err error
	c.catalog.categoryHandlerInit.Do(func() {
		c.catalog.categoryHandler, err = c.initCategoryHandler()
		if err != nil {
			c.initErrors["categoryHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryHandler"]; exists {
		return nil, storedErr
	}
	return c.catalog.categoryHandler, nil
}

// ProductHandler returns the HTTP handler for product operations.
func (c *Container) ProductHandler() (*catalogHTTP.ProductHandler, error) {
	var err error
	c.catalog.productHandlerInit.Do(func() {
		c.catalog.productHandler, err = c.initProductHandler()
		if err != nil {
			c.initErrors["productHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productHandler"]; exists {
		return nil, storedErr
	}
	return c.catalog.productHandler, nil
}

// initCategoryRepository creates the category repository based on the database driver.
func (c *Container) initCategoryRepository() (catalogUseCase.CategoryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for category repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return catalogRepository.NewPostgreSQLCategoryRepository(db), nil
	case "mysql":
		return catalogRepository.NewMySQLCategoryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProductRepository creates the product repository based on the database driver.
func (c *Container) initProductRepository() (catalogUseCase.ProductRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for product repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return catalogRepository.NewPostgreSQLProductRepository(db), nil
	case "mysql":
		return catalogRepository.NewMySQLProductRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCategoryUseCase creates the category use case with all its dependencies.
func (c *Container) initCategoryUseCase() (catalogUseCase.CategoryUseCase, error) {
	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for category use case: %w", err)
	}

	return catalogUseCase.NewCategoryUseCase(categoryRepo), nil
}

// initProductUseCase creates the product use case with all its dependencies.
func (c *Container) initProductUseCase() (catalogUseCase.ProductUseCase, error) {
	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for product use case: %w", err)
	}

	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for product use case: %w", err)
	}

	baseUseCase := catalogUseCase.NewProductUseCase(productRepo, categoryRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for product use case: %w", err)
		}
		return catalogUseCase.NewProductUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCategoryHandler creates the category HTTP handler with all its dependencies.
func (c *Container) initCategoryHandler() (*catalogHTTP.CategoryHandler, error) {
	useCase, err := c.CategoryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get category use case for category handler: %w", err)
	}

	return catalogHTTP.NewCategoryHandler(useCase, c.Logger()), nil
}

// initProductHandler creates the product HTTP handler with all its dependencies.
func (c *Container) initProductHandler() (*catalogHTTP.ProductHandler, error) {
	useCase, err := c.ProductUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get product use case for product handler: %w", err)
	}

	return catalogHTTP.NewProductHandler(useCase, c.Logger()), nil
}
