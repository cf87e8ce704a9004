package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/catalog/domain"
	"github.com/portalaudio/cms/internal/database"
	apperrors "github.com/portalaudio/cms/internal/errors"
)

// PostgreSQLProductRepository handles product persistence for PostgreSQL.
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// NewPostgreSQLProductRepository creates a new PostgreSQLProductRepository.
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{
		db: db,
	}
}

// Create inserts a new product.
func (r *PostgreSQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	specificationsJSON, imagesJSON, err := marshalProductDocuments(product)
	if err != nil {
		return err
	}

	query := `INSERT INTO products (id, name, slug, category_id, description, specifications,
				price, brand, origin, availability, images, featured, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())`

	_, err = querier.ExecContext(ctx, query,
		product.ID, product.Name, product.Slug, product.CategoryID, product.Description,
		specificationsJSON, product.Price, product.Brand, product.Origin,
		product.Availability, imagesJSON, product.Featured)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrProductSlugTaken
		}
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Update modifies an existing product.
func (r *PostgreSQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	specificationsJSON, imagesJSON, err := marshalProductDocuments(product)
	if err != nil {
		return err
	}

	query := `UPDATE products
			  SET name = $1, slug = $2, category_id = $3, description = $4, specifications = $5,
				  price = $6, brand = $7, origin = $8, availability = $9, images = $10,
				  featured = $11, updated_at = NOW()
			  WHERE id = $12`

	result, err := querier.ExecContext(ctx, query,
		product.Name, product.Slug, product.CategoryID, product.Description, specificationsJSON,
		product.Price, product.Brand, product.Origin, product.Availability, imagesJSON,
		product.Featured, product.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrProductSlugTaken
		}
		return apperrors.Wrap(err, "failed to update product")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

const postgresProductColumns = `p.id, p.name, p.slug, p.category_id, p.description,
	p.specifications, p.price, p.brand, p.origin, p.availability, p.images, p.featured,
	p.created_at, p.updated_at,
	c.id, c.name, c.slug, c.description, c.image_url, c.created_at, c.updated_at`

// GetByID retrieves a product by ID with its category summary.
func (r *PostgreSQLProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresProductColumns + `
			  FROM products p LEFT JOIN categories c ON c.id = p.category_id
			  WHERE p.id = $1`

	return scanPostgreSQLProduct(querier.QueryRowContext(ctx, query, id))
}

// GetBySlug retrieves a product by slug with its category summary.
func (r *PostgreSQLProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresProductColumns + `
			  FROM products p LEFT JOIN categories c ON c.id = p.category_id
			  WHERE p.slug = $1`

	return scanPostgreSQLProduct(querier.QueryRowContext(ctx, query, slug))
}

// List retrieves products matching the filter, newest first.
func (r *PostgreSQLProductRepository) List(
	ctx context.Context,
	filter domain.ProductFilter,
	offset, limit int,
) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresProductColumns + `
			  FROM products p LEFT JOIN categories c ON c.id = p.category_id`

	conditions := []string{}
	args := []any{}
	if filter.CategorySlug != "" {
		args = append(args, filter.CategorySlug)
		conditions = append(conditions, fmt.Sprintf("c.slug = $%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conditions = append(conditions, fmt.Sprintf("p.featured = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf(
			"(p.name ILIKE $%d OR p.description ILIKE $%d OR p.brand ILIKE $%d)",
			len(args), len(args), len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, offset)
	query += fmt.Sprintf(" ORDER BY p.created_at DESC OFFSET $%d", len(args))
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanPostgreSQLProductRow(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}

	return products, nil
}

// Delete removes a product by ID.
func (r *PostgreSQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM products WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgreSQLProduct(row *sql.Row) (*domain.Product, error) {
	product, err := scanPostgreSQLProductRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func scanPostgreSQLProductRow(scanner rowScanner) (*domain.Product, error) {
	var product domain.Product
	var specificationsJSON, imagesJSON []byte
	var productCategoryID sql.NullString
	var categoryID, categoryName, categorySlug, categoryDescription, categoryImageURL sql.NullString
	var categoryCreatedAt, categoryUpdatedAt sql.NullTime

	err := scanner.Scan(
		&product.ID, &product.Name, &product.Slug, &productCategoryID, &product.Description,
		&specificationsJSON, &product.Price, &product.Brand, &product.Origin,
		&product.Availability, &imagesJSON, &product.Featured,
		&product.CreatedAt, &product.UpdatedAt,
		&categoryID, &categoryName, &categorySlug, &categoryDescription, &categoryImageURL,
		&categoryCreatedAt, &categoryUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to scan product")
	}

	if err := unmarshalProductDocuments(&product, specificationsJSON, imagesJSON); err != nil {
		return nil, err
	}

	if productCategoryID.Valid {
		id, err := uuid.Parse(productCategoryID.String)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to parse category id")
		}
		product.CategoryID = &id
	}

	if categoryID.Valid {
		id, err := uuid.Parse(categoryID.String)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to parse category id")
		}
		product.Category = &domain.Category{
			ID:          id,
			Name:        categoryName.String,
			Slug:        categorySlug.String,
			Description: categoryDescription.String,
			ImageURL:    categoryImageURL.String,
			CreatedAt:   categoryCreatedAt.Time,
			UpdatedAt:   categoryUpdatedAt.Time,
		}
	}

	return &product, nil
}

// marshalProductDocuments serializes the JSON document columns.
func marshalProductDocuments(product *domain.Product) (specifications, images []byte, err error) {
	specs := product.Specifications
	if specs == nil {
		specs = map[string]any{}
	}
	specifications, err = json.Marshal(specs)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal specifications")
	}

	imgs := product.Images
	if imgs == nil {
		imgs = []string{}
	}
	images, err = json.Marshal(imgs)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal images")
	}

	return specifications, images, nil
}

// unmarshalProductDocuments deserializes the JSON document columns.
func unmarshalProductDocuments(product *domain.Product, specifications, images []byte) error {
	if len(specifications) > 0 {
		if err := json.Unmarshal(specifications, &product.Specifications); err != nil {
			return apperrors.Wrap(err, "failed to unmarshal specifications")
		}
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &product.Images); err != nil {
			return apperrors.Wrap(err, "failed to unmarshal images")
		}
	}
	return nil
}
