package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/database"
	"github.com/portalaudio/cms/internal/dealer/domain"
	apperrors "github.com/portalaudio/cms/internal/errors"
)

// MySQLDealerRepository handles dealer persistence for MySQL.
type MySQLDealerRepository struct {
	db *sql.DB
}

// NewMySQLDealerRepository creates a new MySQLDealerRepository.
func NewMySQLDealerRepository(db *sql.DB) *MySQLDealerRepository {
	return &MySQLDealerRepository{
		db: db,
	}
}

// Create inserts a new dealer.
func (r *MySQLDealerRepository) Create(ctx context.Context, dealer *domain.Dealer) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO dealers (id, name, address, city, region, phone, email,
			  latitude, longitude, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := dealer.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		uuidBytes, dealer.Name, dealer.Address, dealer.City, dealer.Region,
		dealer.Phone, dealer.Email, dealer.Latitude, dealer.Longitude, string(dealer.Status))
	if err != nil {
		return apperrors.Wrap(err, "failed to create dealer")
	}
	return nil
}

// Update modifies an existing dealer.
func (r *MySQLDealerRepository) Update(ctx context.Context, dealer *domain.Dealer) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE dealers
			  SET name = ?, address = ?, city = ?, region = ?, phone = ?,
			  email = ?, latitude = ?, longitude = ?, status = ?, updated_at = NOW()
			  WHERE id = ?`

	uuidBytes, err := dealer.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		dealer.Name, dealer.Address, dealer.City, dealer.Region, dealer.Phone,
		dealer.Email, dealer.Latitude, dealer.Longitude, string(dealer.Status), uuidBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to update dealer")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrDealerNotFound
	}

	return nil
}

// GetByID retrieves a dealer by ID.
func (r *MySQLDealerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dealer, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + dealerColumns + ` FROM dealers WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var dealer domain.Dealer
	var idBytes []byte
	var status string
	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
		&idBytes, &dealer.Name, &dealer.Address, &dealer.City, &dealer.Region,
		&dealer.Phone, &dealer.Email, &dealer.Latitude, &dealer.Longitude,
		&status, &dealer.CreatedAt, &dealer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDealerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get dealer")
	}
	if err := dealer.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	dealer.Status = domain.Status(status)

	return &dealer, nil
}

// List retrieves dealers matching the filter, ordered by city.
func (r *MySQLDealerRepository) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Dealer, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + dealerColumns + ` FROM dealers`
	conditions := ""
	args := []any{}

	if filter.Status != "" {
		conditions = " WHERE status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.Region != "" {
		if conditions == "" {
			conditions = " WHERE region = ?"
		} else {
			conditions += " AND region = ?"
		}
		args = append(args, filter.Region)
	}
	query += conditions + " ORDER BY city ASC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list dealers")
	}
	defer rows.Close()

	dealers := []*domain.Dealer{}
	for rows.Next() {
		var dealer domain.Dealer
		var idBytes []byte
		var status string
		if err := rows.Scan(
			&idBytes, &dealer.Name, &dealer.Address, &dealer.City, &dealer.Region,
			&dealer.Phone, &dealer.Email, &dealer.Latitude, &dealer.Longitude,
			&status, &dealer.CreatedAt, &dealer.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan dealer")
		}
		if err := dealer.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		dealer.Status = domain.Status(status)
		dealers = append(dealers, &dealer)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate dealers")
	}

	return dealers, nil
}

// Delete removes a dealer by ID.
func (r *MySQLDealerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM dealers WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete dealer")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrDealerNotFound
	}

	return nil
}
