package app

import (
	"fmt"
	"sync"

	testimonialHTTP "github.com/portalaudio/cms/internal/testimonial/http"
	testimonialRepository "github.com/portalaudio/cms/internal/testimonial/repository"
	testimonialUseCase "github.com/portalaudio/cms/internal/testimonial/usecase"
)

// testimonialComponents holds the lazily initialized testimonial module components.
type testimonialComponents struct {
	repo        testimonialUseCase.TestimonialRepository
	repoInit    sync.Once
	useCase     testimonialUseCase.TestimonialUseCase
	useCaseInit sync.Once
	handler     *testimonialHTTP.TestimonialHandler
	handlerInit sync.Once
}

// TestimonialRepository returns the testimonial repository instance.
func (c *Container) TestimonialRepository() (testimonialUseCase.TestimonialRepository, error) {
	var err error
	c.testimonial.repoInit.Do(func() {
		c.testimonial.repo, err = c.initTestimonialRepository()
		if err != nil {
			c.initErrors["testimonialRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["testimonialRepo"]; exists {
		return nil, storedErr
	}
	return c.testimonial.repo, nil
}

// TestimonialUseCase returns the testimonial use case instance.
func (c *Container) TestimonialUseCase() (testimonialUseCase.TestimonialUseCase, error) {
	var err error
	c.testimonial.useCaseInit.Do(func() {
		c.testimonial.useCase, err = c.initTestimonialUseCase()
		if err != nil {
			c.initErrors["testimonialUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["testimonialUseCase"]; exists {
		return nil, storedErr
	}
	return c.testimonial.useCase, nil
}

// TestimonialHandler returns the HTTP handler for testimonial operations.
func (c *Container) TestimonialHandler() (*testimonialHTTP.TestimonialHandler, error) {
	var err error
	c.testimonial.handlerInit.Do(func() {
		c.testimonial.handler, err = c.initTestimonialHandler()
		if err != nil {
			c.initErrors["testimonialHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["testimonialHandler"]; exists {
		return nil, storedErr
	}
	return c.testimonial.handler, nil
}

// initTestimonialRepository creates the testimonial repository based on the database driver.
func (c *Container) initTestimonialRepository() (testimonialUseCase.TestimonialRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for testimonial repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return testimonialRepository.NewPostgreSQLTestimonialRepository(db), nil
	case "mysql":
		return testimonialRepository.NewMySQLTestimonialRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTestimonialUseCase creates the testimonial use case with all its dependencies.
// Product references are resolved against the catalog product repository.
func (c *Container) initTestimonialUseCase() (testimonialUseCase.TestimonialUseCase, error) {
	testimonialRepo, err := c.TestimonialRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial repository for testimonial use case: %w", err)
	}

	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for testimonial use case: %w", err)
	}

	return testimonialUseCase.NewTestimonialUseCase(testimonialRepo, productRepo), nil
}

// initTestimonialHandler creates the testimonial HTTP handler with all its dependencies.
func (c *Container) initTestimonialHandler() (*testimonialHTTP.TestimonialHandler, error) {
	useCase, err := c.TestimonialUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial use case for testimonial handler: %w", err)
	}

	return testimonialHTTP.NewTestimonialHandler(useCase, c.Logger()), nil
}
