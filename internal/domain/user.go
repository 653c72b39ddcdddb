package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash never leaves the database layer.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
