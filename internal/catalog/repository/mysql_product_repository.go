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

// MySQLProductRepository handles product persistence for MySQL.
type MySQLProductRepository struct {
	db *sql.DB
}

// NewMySQLProductRepository creates a new MySQLProductRepository.
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{
		db: db,
	}
}

// Create inserts a new product.
func (r *MySQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	specificationsJSON, imagesJSON, err := marshalProductDocuments(product)
	if err != nil {
		return err
	}

	uuidBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	categoryIDBytes, err := marshalOptionalUUID(product.CategoryID)
	if err != nil {
		return err
	}

	query := `INSERT INTO products (id, name, slug, category_id, description, specifications,
				price, brand, origin, availability, images, featured, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	_, err = querier.ExecContext(ctx, query,
		uuidBytes, product.Name, product.Slug, categoryIDBytes, product.Description,
		specificationsJSON, product.Price, product.Brand, product.Origin,
		product.Availability, imagesJSON, product.Featured)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrProductSlugTaken
		}
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Update modifies an existing product.
func (r *MySQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	specificationsJSON, imagesJSON, err := marshalProductDocuments(product)
	if err != nil {
		return err
	}

	uuidBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	categoryIDBytes, err := marshalOptionalUUID(product.CategoryID)
	if err != nil {
		return err
	}

	query := `UPDATE products
			  SET name = ?, slug = ?, category_id = ?, description = ?, specifications = ?,
				  price = ?, brand = ?, origin = ?, availability = ?, images = ?,
				  featured = ?, updated_at = NOW()
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		product.Name, product.Slug, categoryIDBytes, product.Description, specificationsJSON,
		product.Price, product.Brand, product.Origin, product.Availability, imagesJSON,
		product.Featured, uuidBytes)
	if err != nil {
		if isMySQLUniqueViolation(err) {
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

const mysqlProductColumns = `p.id, p.name, p.slug, p.category_id, p.description,
	p.specifications, p.price, p.brand, p.origin, p.availability, p.images, p.featured,
	p.created_at, p.updated_at,
	c.id, c.name, c.slug, c.description, c.image_url, c.created_at, c.updated_at`

// GetByID retrieves a product by ID with its category summary.
func (r *MySQLProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlProductColumns + `
			  FROM products p LEFT JOIN categories c ON c.id = p.category_id
			  WHERE p.id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	return scanMySQLProduct(querier.QueryRowContext(ctx, query, uuidBytes))
}

// GetBySlug retrieves a product by slug with its category summary.
func (r *MySQLProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlProductColumns + `
			  FROM products p LEFT JOIN categories c ON c.id = p.category_id
			  WHERE p.slug = ?`

	return scanMySQLProduct(querier.QueryRowContext(ctx, query, slug))
}

// List retrieves products matching the filter, newest first.
func (r *MySQLProductRepository) List(
	ctx context.Context,
	filter domain.ProductFilter,
	offset, limit int,
) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlProductColumns + `
			  FROM products p LEFT JOIN categories c ON c.id = p.category_id`

	conditions := []string{}
	args := []any{}
	if filter.CategorySlug != "" {
		conditions = append(conditions, "c.slug = ?")
		args = append(args, filter.CategorySlug)
	}
	if filter.Featured != nil {
		conditions = append(conditions, "p.featured = ?")
		args = append(args, *filter.Featured)
	}
	if filter.Search != "" {
		conditions = append(conditions, "(p.name LIKE ? OR p.description LIKE ? OR p.brand LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY p.created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanMySQLProductRow(rows)
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
func (r *MySQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM products WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
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

func scanMySQLProduct(row *sql.Row) (*domain.Product, error) {
	product, err := scanMySQLProductRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func scanMySQLProductRow(scanner rowScanner) (*domain.Product, error) {
	var product domain.Product
	var idBytes, productCategoryIDBytes, categoryIDBytes []byte
	var specificationsJSON, imagesJSON []byte
	var categoryName, categorySlug, categoryDescription, categoryImageURL sql.NullString
	var categoryCreatedAt, categoryUpdatedAt sql.NullTime

	err := scanner.Scan(
		&idBytes, &product.Name, &product.Slug, &productCategoryIDBytes, &product.Description,
		&specificationsJSON, &product.Price, &product.Brand, &product.Origin,
		&product.Availability, &imagesJSON, &product.Featured,
		&product.CreatedAt, &product.UpdatedAt,
		&categoryIDBytes, &categoryName, &categorySlug, &categoryDescription, &categoryImageURL,
		&categoryCreatedAt, &categoryUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to scan product")
	}

	if err := product.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	if err := unmarshalProductDocuments(&product, specificationsJSON, imagesJSON); err != nil {
		return nil, err
	}

	if len(productCategoryIDBytes) > 0 {
		var id uuid.UUID
		if err := id.UnmarshalBinary(productCategoryIDBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal category UUID")
		}
		product.CategoryID = &id
	}

	if len(categoryIDBytes) > 0 {
		category := &domain.Category{
			Name:        categoryName.String,
			Slug:        categorySlug.String,
			Description: categoryDescription.String,
			ImageURL:    categoryImageURL.String,
			CreatedAt:   categoryCreatedAt.Time,
			UpdatedAt:   categoryUpdatedAt.Time,
		}
		if err := category.ID.UnmarshalBinary(categoryIDBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal category UUID")
		}
		product.Category = category
	}

	return &product, nil
}

// marshalOptionalUUID converts a nullable UUID to bytes for MySQL BINARY(16).
func marshalOptionalUUID(id *uuid.UUID) (any, error) {
	if id == nil {
		return nil, nil
	}
	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	return uuidBytes, nil
}
