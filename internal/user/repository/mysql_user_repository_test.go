package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/portalaudio/cms/internal/auth/domain"
	"github.com/portalaudio/cms/internal/testutil"
	"github.com/portalaudio/cms/internal/user/domain"
)

func newTestUser(email string) *domain.User {
	return &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=2$c2FsdHNhbHQ$aGFzaGhhc2g",
		Role:         authDomain.RoleAdmin,
	}
}

func TestNewMySQLUserRepository(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewMySQLUserRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &MySQLUserRepository{}, repo)
}

func TestMySQLUserRepository_CreateAndGetByEmail(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	user := newTestUser("admin@portalaudio.com.br")
	require.NoError(t, repo.Create(ctx, user))

	read, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)

	assert.Equal(t, user.ID, read.ID)
	assert.Equal(t, user.Name, read.Name)
	assert.Equal(t, user.Email, read.Email)
	assert.Equal(t, user.PasswordHash, read.PasswordHash)
	assert.Equal(t, authDomain.RoleAdmin, read.Role)
	assert.WithinDuration(t, time.Now(), read.CreatedAt, 5*time.Second)
}

func TestMySQLUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "missing@portalaudio.com.br")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Email lookup matches exactly as stored. The users.email column carries a
// binary collation so MySQL does not fall back to case-insensitive matching.
func TestMySQLUserRepository_GetByEmail_CaseSensitive(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	user := newTestUser("admin@portalaudio.com.br")
	require.NoError(t, repo.Create(ctx, user))

	read, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, read.ID)

	_, err = repo.GetByEmail(ctx, strings.ToUpper(user.Email))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetByEmail(ctx, "Admin@portalaudio.com.br")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMySQLUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("admin@portalaudio.com.br")))

	err := repo.Create(ctx, newTestUser("admin@portalaudio.com.br"))
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}
