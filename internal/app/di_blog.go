package app

import (
	"fmt"
	"sync"

	blogHTTP "github.com/portalaudio/cms/internal/blog/http"
	blogRepository "github.com/portalaudio/cms/internal/blog/repository"
	blogUseCase "github.com/portalaudio/cms/internal/blog/usecase"
)

// blogComponents holds the lazily initialized blog module components.
type blogComponents struct {
	repo        blogUseCase.PostRepository
	repoInit    sync.Once
	useCase     blogUseCase.PostUseCase
	useCaseInit sync.Once
	handler     *blogHTTP.PostHandler
	handlerInit sync.Once
}

// PostRepository returns the blog post repository instance.
func (c *Container) PostRepository() (blogUseCase.PostRepository, error) {
	var err error
	c.blog.repoInit.Do(func() {
		c.blog.repo, err = c.initPostRepository()
		if err != nil {
			c.initErrors["postRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["postRepo"]; exists {
		return nil, storedErr
	}
	return c.blog.repo, nil
}

// PostUseCase returns the blog post use case instance.
func (c *Container) PostUseCase() (blogUseCase.PostUseCase, error) {
	var err error
	c.blog.useCaseInit.Do(func() {
		c.blog.useCase, err = c.initPostUseCase()
		if err != nil {
			c.initErrors["postUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["postUseCase"]; exists {
		return nil, storedErr
	}
	return c.blog.useCase, nil
}

// PostHandler returns the HTTP handler for blog post operations.
func (c *Container) PostHandler() (*blogHTTP.PostHandler, error) {
	var err error
	c.blog.handlerInit.Do(func() {
		c.blog.handler, err = c.initPostHandler()
		if err != nil {
			c.initErrors["postHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["postHandler"]; exists {
		return nil, storedErr
	}
	return c.blog.handler, nil
}

// initPostRepository creates the blog post repository based on the database driver.
func (c *Container) initPostRepository() (blogUseCase.PostRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for post repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return blogRepository.NewPostgreSQLPostRepository(db), nil
	case "mysql":
		return blogRepository.NewMySQLPostRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initPostUseCase creates the blog post use case with all its dependencies.
func (c *Container) initPostUseCase() (blogUseCase.PostUseCase, error) {
	postRepo, err := c.PostRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get post repository for post use case: %w", err)
	}

	return blogUseCase.NewPostUseCase(postRepo), nil
}

// initPostHandler creates the blog post HTTP handler with all its dependencies.
func (c *Container) initPostHandler() (*blogHTTP.PostHandler, error) {
	useCase, err := c.PostUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get post use case for post handler: %w", err)
	}

	return blogHTTP.NewPostHandler(useCase, c.Logger()), nil
}
