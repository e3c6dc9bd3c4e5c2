package astro_db

import (
	"context"
	"testing"
	"time"

	"cosmowatch/driver/models"
	"cosmowatch/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertUser(t *testing.T) {
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &AstroDBRepository{pool: mock}
	user := models.User{
		ID:           uuid.New(),
		Username:     "stargazer",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Username, user.PasswordHash, user.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.InsertUser(context.Background(), user))
	})

	t.Run("duplicate username maps to sentinel", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Username, user.PasswordHash, user.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		err := repo.InsertUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername(t *testing.T) {
	logger.InitLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &AstroDBRepository{pool: mock}
	userID := uuid.New()
	createdAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(userID, "stargazer", "$2a$10$hash", createdAt)

		mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users").
			WithArgs("stargazer").
			WillReturnRows(rows)

		user, err := repo.FindUserByUsername(context.Background(), "stargazer")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	})

	t.Run("unknown username", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindUserByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
