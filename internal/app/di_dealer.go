package app

import (
	"fmt"
	"sync"

	dealerHTTP "github.com/portalaudio/cms/internal/dealer/http"
	dealerRepository "github.com/portalaudio/cms/internal/dealer/repository"
	dealerUseCase "github.com/portalaudio/cms/internal/dealer/usecase"
)

// dealerComponents holds the lazily initialized dealer module components.
type dealerComponents struct {
	repo        dealerUseCase.DealerRepository
	repoInit    sync.Once
	useCase     dealerUseCase.DealerUseCase
	useCaseInit sync.Once
	handler     *dealerHTTP.DealerHandler
	handlerInit sync.Once
}

// DealerRepository returns the dealer repository instance.
func (c *Container) DealerRepository() (dealerUseCase.DealerRepository, error) {
	var err error
	c.dealer.repoInit.Do(func() {
		c.dealer.repo, err = c.initDealerRepository()
		if err != nil {
			c.initErrors["dealerRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dealerRepo"]; exists {
		return nil, storedErr
	}
	return c.dealer.repo, nil
}

// DealerUseCase returns the dealer use case instance.
func (c *Container) DealerUseCase() (dealerUseCase.DealerUseCase, error) {
	var err error
	c.dealer.useCaseInit.Do(func() {
		c.dealer.useCase, err = c.initDealerUseCase()
		if err != nil {
			c.initErrors["dealerUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dealerUseCase"]; exists {
		return nil, storedErr
	}
	return c.dealer.useCase, nil
}

// DealerHandler returns the HTTP handler for dealer operations.
func (c *Container) DealerHandler() (*dealerHTTP.DealerHandler, error) {
	var err error
	c.dealer.handlerInit.Do(func() {
		c.dealer.handler, err = c.initDealerHandler()
		if err != nil {
			c.initErrors["dealerHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dealerHandler"]; exists {
		return nil, storedErr
	}
	return c.dealer.handler, nil
}

// initDealerRepository creates the dealer repository based on the database driver.
func (c *Container) initDealerRepository() (dealerUseCase.DealerRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for dealer repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return dealerRepository.NewPostgreSQLDealerRepository(db), nil
	case "mysql":
		return dealerRepository.NewMySQLDealerRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initDealerUseCase creates the dealer use case with all its dependencies.
func (c *Container) initDealerUseCase() (dealerUseCase.DealerUseCase, error) {
	dealerRepo, err := c.DealerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get dealer repository for dealer use case: %w", err)
	}

	return dealerUseCase.NewDealerUseCase(dealerRepo), nil
}

// initDealerHandler creates the dealer HTTP handler with all its dependencies.
func (c *Container) initDealerHandler() (*dealerHTTP.DealerHandler, error) {
	useCase, err := c.DealerUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get dealer use case for dealer handler: %w", err)
	}

	return dealerHTTP.NewDealerHandler(useCase, c.Logger()), nil
}
