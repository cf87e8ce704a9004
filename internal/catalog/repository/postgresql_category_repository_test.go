package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalaudio/cms/internal/catalog/domain"
	"github.com/portalaudio/cms/internal/testutil"
)

func TestNewPostgreSQLCategoryRepository(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &PostgreSQLCategoryRepository{}, repo)
}

func TestPostgreSQLCategoryRepository_Create(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()

	category := &domain.Category{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        "Turntables",
		Slug:        "turntables",
		Description: "Belt and direct drive turntables",
		ImageURL:    "https://cdn.example.com/categories/turntables.jpg",
	}

	err := repo.Create(ctx, category)
	require.NoError(t, err)

	// Verify the category was created by reading it back
	read, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)

	assert.Equal(t, category.ID, read.ID)
	assert.Equal(t, category.Name, read.Name)
	assert.Equal(t, category.Slug, read.Slug)
	assert.Equal(t, category.Description, read.Description)
	assert.Equal(t, category.ImageURL, read.ImageURL)
	assert.WithinDuration(t, time.Now(), read.CreatedAt, 5*time.Second)
}

func TestPostgreSQLCategoryRepository_Create_DuplicateSlug(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()

	first := &domain.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Speakers",
		Slug: "speakers",
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &domain.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Speakers Again",
		Slug: "speakers",
	}
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategorySlugTaken)
}

func TestPostgreSQLCategoryRepository_GetBySlug(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()

	category := &domain.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Amplifiers",
		Slug: "amplifiers",
	}
	require.NoError(t, repo.Create(ctx, category))

	read, err := repo.GetBySlug(ctx, "amplifiers")
	require.NoError(t, err)
	assert.Equal(t, category.ID, read.ID)

	_, err = repo.GetBySlug(ctx, "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestPostgreSQLCategoryRepository_Update(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()

	category := &domain.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Cables",
		Slug: "cables",
	}
	require.NoError(t, repo.Create(ctx, category))

	category.Name = "Cables and Interconnects"
	category.Description = "Analog and digital interconnects"
	require.NoError(t, repo.Update(ctx, category))

	read, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cables and Interconnects", read.Name)
	assert.Equal(t, "Analog and digital interconnects", read.Description)
}

func TestPostgreSQLCategoryRepository_Update_NotFound(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()

	category := &domain.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Ghost",
		Slug: "ghost",
	}

	err := repo.Update(ctx, category)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestPostgreSQLCategoryRepository_List(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()

	names := []string{"Turntables", "Amplifiers", "Speakers"}
	for _, name := range names {
		category := &domain.Category{
			ID:   uuid.Must(uuid.NewV7()),
			Name: name,
			Slug: "list-" + name,
		}
		require.NoError(t, repo.Create(ctx, category))
	}

	categories, err := repo.List(ctx, 0, 50)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	// Ordered by name
	assert.Equal(t, "Amplifiers", categories[0].Name)
	assert.Equal(t, "Speakers", categories[1].Name)
	assert.Equal(t, "Turntables", categories[2].Name)

	// Pagination
	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Speakers", page[0].Name)
}

func TestPostgreSQLCategoryRepository_Delete(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()

	category := &domain.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Headphones",
		Slug: "headphones",
	}
	require.NoError(t, repo.Create(ctx, category))

	require.NoError(t, repo.Delete(ctx, category.ID))

	_, err := repo.GetByID(ctx, category.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	// Deleting again reports not found
	err = repo.Delete(ctx, category.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestPostgreSQLCategoryRepository_Delete_ClearsProductCategory(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCategoryRepository(db)
	ctx := context.Background()

	category := &domain.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Phono Stages",
		Slug: "phono-stages",
	}
	require.NoError(t, repo.Create(ctx, category))

	productID := testutil.CreateTestProduct(t, db, "postgres", "reference-phono", &category.ID)

	require.NoError(t, repo.Delete(ctx, category.ID))

	// The product survives with its category cleared
	var categoryID *uuid.UUID
	err := db.QueryRowContext(ctx, "SELECT category_id FROM products WHERE id = $1", productID).Scan(&categoryID)
	require.NoError(t, err)
	assert.Nil(t, categoryID)
}
