// Package repository provides data persistence implementations for blog posts.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/blog/domain"
	"github.com/portalaudio/cms/internal/database"
	apperrors "github.com/portalaudio/cms/internal/errors"
)

const postColumns = `id, title, slug, content, excerpt, featured_image, author,
			  instagram_url, published, published_at, created_at, updated_at`

// PostgreSQLPostRepository handles blog post persistence for PostgreSQL.
type PostgreSQLPostRepository struct {
	db *sql.DB
}

// NewPostgreSQLPostRepository creates a new PostgreSQLPostRepository.
func NewPostgreSQLPostRepository(db *sql.DB) *PostgreSQLPostRepository {
	return &PostgreSQLPostRepository{
		db: db,
	}
}

// Create inserts a new blog post.
func (r *PostgreSQLPostRepository) Create(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO blog_posts (id, title, slug, content, excerpt, featured_image,
			  author, instagram_url, published, published_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		post.ID, post.Title, post.Slug, post.Content, post.Excerpt, post.FeaturedImage,
		post.Author, post.InstagramURL, post.Published, post.PublishedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrPostSlugTaken
		}
		return apperrors.Wrap(err, "failed to create blog post")
	}
	return nil
}

// Update modifies an existing blog post.
func (r *PostgreSQLPostRepository) Update(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE blog_posts
			  SET title = $1, slug = $2, content = $3, excerpt = $4, featured_image = $5,
			  author = $6, instagram_url = $7, published = $8, published_at = $9, updated_at = NOW()
			  WHERE id = $10`

	result, err := querier.ExecContext(ctx, query,
		post.Title, post.Slug, post.Content, post.Excerpt, post.FeaturedImage,
		post.Author, post.InstagramURL, post.Published, post.PublishedAt, post.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrPostSlugTaken
		}
		return apperrors.Wrap(err, "failed to update blog post")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrPostNotFound
	}

	return nil
}

// GetByID retrieves a blog post by ID.
func (r *PostgreSQLPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`

	return r.getOne(querier.QueryRowContext(ctx, query, id))
}

// GetBySlug retrieves a blog post by slug.
func (r *PostgreSQLPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1`

	return r.getOne(querier.QueryRowContext(ctx, query, slug))
}

// List retrieves blog posts. Published-only listings are ordered by publication
// date, everything else by creation date, both newest first.
func (r *PostgreSQLPostRepository) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Post, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postColumns + ` FROM blog_posts`
	args := []any{}

	if filter.PublishedOnly {
		query += " WHERE published = TRUE ORDER BY published_at DESC"
	} else {
		query += " ORDER BY created_at DESC"
	}

	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list blog posts")
	}
	defer rows.Close()

	posts := []*domain.Post{}
	for rows.Next() {
		post, err := scanPostgreSQLPost(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan blog post")
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate blog posts")
	}

	return posts, nil
}

// Delete removes a blog post by ID.
func (r *PostgreSQLPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM blog_posts WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete blog post")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrPostNotFound
	}

	return nil
}

func (r *PostgreSQLPostRepository) getOne(row rowScanner) (*domain.Post, error) {
	post, err := scanPostgreSQLPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get blog post")
	}
	return post, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgreSQLPost(row rowScanner) (*domain.Post, error) {
	var post domain.Post
	var publishedAt sql.NullTime

	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &post.Excerpt,
		&post.FeaturedImage, &post.Author, &post.InstagramURL, &post.Published,
		&publishedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if publishedAt.Valid {
		post.PublishedAt = &publishedAt.Time
	}

	return &post, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
