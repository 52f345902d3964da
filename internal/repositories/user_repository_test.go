package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/cosmetics-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserRepo(t *testing.T) {
	db, _ := newMockDB(t)

	repo := repository.NewUserRepo(db)
	assert.NotNil(t, repo, "NewUserRepo should return a non-nil repository")
}

func TestUserRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("CreateUser_Success", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewUserRepo(db)
		user := &models.User{
			Email:    "test@example.com",
			Password: "hashedpassword",
			Name:     "Test User",
			Role:     models.RoleCustomer,
		}
		now := time.Now()
		newID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, password, name, role, created_at, updated_at)`)).
			WithArgs(user.Email, user.Password, user.Name, user.Role).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(newID.String(), now, now))

		// Act
		err := repo.CreateUser(ctx, user)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, newID, user.ID)
		assert.Equal(t, now, user.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateUser_Error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewUserRepo(db)
		dbErr := errors.New("duplicate key value violates unique constraint")

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).WillReturnError(dbErr)

		err := repo.CreateUser(ctx, &models.User{Email: "dup@example.com"})

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByEmail_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewUserRepo(db)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
			WithArgs("admin@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "name", "role", "created_at", "updated_at"}).
				AddRow(id.String(), "admin@example.com", "hash", "Admin", models.RoleAdmin, now, now))

		user, err := repo.GetUserByEmail(ctx, "admin@example.com")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "hash", user.Password)
		assert.Equal(t, models.RoleAdmin, user.Role)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByEmail_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewUserRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
			WithArgs("missing@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByEmail(ctx, "missing@example.com")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
	})

	t.Run("GetUserById_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewUserRepo(db)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "created_at", "updated_at"}).
				AddRow(id.String(), "c@example.com", "Cust", models.RoleCustomer, now, now))

		user, err := repo.GetUserById(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Cust", user.Name)
		assert.Empty(t, user.Password)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserById_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewUserRepo(db)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetUserById(ctx, id)

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
