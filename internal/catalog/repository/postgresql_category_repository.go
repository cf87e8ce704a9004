// Package repository provides data persistence implementations for catalog entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/catalog/domain"
	"github.com/portalaudio/cms/internal/database"
	apperrors "github.com/portalaudio/cms/internal/errors"
)

// PostgreSQLCategoryRepository handles category persistence for PostgreSQL.
type PostgreSQLCategoryRepository struct {
	db *sql.DB
}

// NewPostgreSQLCategoryRepository creates a new PostgreSQLCategoryRepository.
func NewPostgreSQLCategoryRepository(db *sql.DB) *PostgreSQLCategoryRepository {
	return &PostgreSQLCategoryRepository{
		db: db,
	}
}

// Create inserts a new category.
func (r *PostgreSQLCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO categories (id, name, slug, description, image_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		category.ID, category.Name, category.Slug, category.Description, category.ImageURL)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrCategorySlugTaken
		}
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

// Update modifies an existing category.
func (r *PostgreSQLCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE categories
			  SET name = $1, slug = $2, description = $3, image_url = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := querier.ExecContext(ctx, query,
		category.Name, category.Slug, category.Description, category.ImageURL, category.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrCategorySlugTaken
		}
		return apperrors.Wrap(err, "failed to update category")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// GetByID retrieves a category by ID.
func (r *PostgreSQLCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, slug, description, image_url, created_at, updated_at
			  FROM categories WHERE id = $1`

	return r.scanCategory(querier.QueryRowContext(ctx, query, id))
}

// GetBySlug retrieves a category by slug.
func (r *PostgreSQLCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, slug, description, image_url, created_at, updated_at
			  FROM categories WHERE slug = $1`

	return r.scanCategory(querier.QueryRowContext(ctx, query, slug))
}

// List retrieves categories ordered by name.
func (r *PostgreSQLCategoryRepository) List(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, slug, description, image_url, created_at, updated_at
			  FROM categories ORDER BY name ASC OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(
			&category.ID, &category.Name, &category.Slug, &category.Description,
			&category.ImageURL, &category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

// Delete removes a category by ID. Products referencing it keep existing with a
// cleared category (ON DELETE SET NULL).
func (r *PostgreSQLCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM categories WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

func (r *PostgreSQLCategoryRepository) scanCategory(row *sql.Row) (*domain.Category, error) {
	var category domain.Category
	err := row.Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.ImageURL, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category")
	}
	return &category, nil
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
