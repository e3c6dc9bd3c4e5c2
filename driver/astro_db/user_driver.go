package astro_db

import (
	"context"
	"errors"

	"cosmowatch/driver/models"
	"cosmowatch/utils/logger"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUsernameTaken reports a unique-constraint violation on users.username.
var ErrUsernameTaken = errors.New("username already taken")

const uniqueViolationCode = "23505"

// InsertUser stores a new account row.
func (r *AstroDBRepository) InsertUser(ctx context.Context, user models.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrUsernameTaken
		}
		logger.Logger.Error("error inserting user", "error", err, "username", user.Username)
		return errors.New("error inserting user")
	}

	return nil
}

// FindUserByUsername looks up one account. Returns pgx.ErrNoRows via the
// underlying scan when the username is unknown.
func (r *AstroDBRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = $1`,
		username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
