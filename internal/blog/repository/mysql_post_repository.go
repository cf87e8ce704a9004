package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/blog/domain"
	"github.com/portalaudio/cms/internal/database"
	apperrors "github.com/portalaudio/cms/internal/errors"
)

// MySQLPostRepository handles blog post persistence for MySQL.
type MySQLPostRepository struct {
	db *sql.DB
}

// NewMySQLPostRepository creates a new MySQLPostRepository.
func NewMySQLPostRepository(db *sql.DB) *MySQLPostRepository {
	return &MySQLPostRepository{
		db: db,
	}
}

// Create inserts a new blog post.
func (r *MySQLPostRepository) Create(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO blog_posts (id, title, slug, content, excerpt, featured_image,
			  author, instagram_url, published, published_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := post.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		uuidBytes, post.Title, post.Slug, post.Content, post.Excerpt, post.FeaturedImage,
		post.Author, post.InstagramURL, post.Published, post.PublishedAt)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrPostSlugTaken
		}
		return apperrors.Wrap(err, "failed to create blog post")
	}
	return nil
}

// Update modifies an existing blog post.
func (r *MySQLPostRepository) Update(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE blog_posts
			  SET title = ?, slug = ?, content = ?, excerpt = ?, featured_image = ?,
			  author = ?, instagram_url = ?, published = ?, published_at = ?, updated_at = NOW()
			  WHERE id = ?`

	uuidBytes, err := post.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		post.Title, post.Slug, post.Content, post.Excerpt, post.FeaturedImage,
		post.Author, post.InstagramURL, post.Published, post.PublishedAt, uuidBytes)
	if err != nil {
		if isMySQLUniqueViolation(err) {
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
func (r *MySQLPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	return r.getOne(querier.QueryRowContext(ctx, query, uuidBytes))
}

// GetBySlug retrieves a blog post by slug.
func (r *MySQLPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = ?`

	return r.getOne(querier.QueryRowContext(ctx, query, slug))
}

// List retrieves blog posts. Published-only listings are ordered by publication
// date, everything else by creation date, both newest first.
func (r *MySQLPostRepository) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Post, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postColumns + ` FROM blog_posts`
	if filter.PublishedOnly {
		query += " WHERE published = TRUE ORDER BY published_at DESC"
	} else {
		query += " ORDER BY created_at DESC"
	}
	query += " LIMIT ? OFFSET ?"

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list blog posts")
	}
	defer rows.Close()

	posts := []*domain.Post{}
	for rows.Next() {
		post, err := scanMySQLPost(rows)
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
func (r *MySQLPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM blog_posts WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
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

func (r *MySQLPostRepository) getOne(row rowScanner) (*domain.Post, error) {
	post, err := scanMySQLPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get blog post")
	}
	return post, nil
}

func scanMySQLPost(row rowScanner) (*domain.Post, error) {
	var post domain.Post
	var idBytes []byte
	var publishedAt sql.NullTime

	err := row.Scan(
		&idBytes, &post.Title, &post.Slug, &post.Content, &post.Excerpt,
		&post.FeaturedImage, &post.Author, &post.InstagramURL, &post.Published,
		&publishedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := post.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		post.PublishedAt = &publishedAt.Time
	}

	return &post, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry" for unique key violations
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
