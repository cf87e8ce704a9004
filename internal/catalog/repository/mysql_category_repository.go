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

// MySQLCategoryRepository handles category persistence for MySQL.
type MySQLCategoryRepository struct {
	db *sql.DB
}

// NewMySQLCategoryRepository creates a new MySQLCategoryRepository.
func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{
		db: db,
	}
}

// Create inserts a new category.
func (r *MySQLCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO categories (id, name, slug, description, image_url, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := category.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		uuidBytes, category.Name, category.Slug, category.Description, category.ImageURL)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrCategorySlugTaken
		}
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

// Update modifies an existing category.
func (r *MySQLCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE categories
			  SET name = ?, slug = ?, description = ?, image_url = ?, updated_at = NOW()
			  WHERE id = ?`

	uuidBytes, err := category.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		category.Name, category.Slug, category.Description, category.ImageURL, uuidBytes)
	if err != nil {
		if isMySQLUniqueViolation(err) {
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
func (r *MySQLCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, slug, description, image_url, created_at, updated_at
			  FROM categories WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	return scanMySQLCategory(querier.QueryRowContext(ctx, query, uuidBytes))
}

// GetBySlug retrieves a category by slug.
func (r *MySQLCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, slug, description, image_url, created_at, updated_at
			  FROM categories WHERE slug = ?`

	return scanMySQLCategory(querier.QueryRowContext(ctx, query, slug))
}

// List retrieves categories ordered by name.
func (r *MySQLCategoryRepository) List(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, slug, description, image_url, created_at, updated_at
			  FROM categories ORDER BY name ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		var category domain.Category
		var idBytes []byte
		if err := rows.Scan(
			&idBytes, &category.Name, &category.Slug, &category.Description,
			&category.ImageURL, &category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		if err := category.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
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
func (r *MySQLCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM categories WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
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

func scanMySQLCategory(row *sql.Row) (*domain.Category, error) {
	var category domain.Category
	var idBytes []byte

	err := row.Scan(
		&idBytes, &category.Name, &category.Slug, &category.Description,
		&category.ImageURL, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category")
	}

	if err := category.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &category, nil
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
