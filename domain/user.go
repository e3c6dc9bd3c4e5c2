package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. The password is stored only as a bcrypt hash.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
