package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	ID        uuid.UUID
	Email     string
	Name      string
	IsAdmin   bool
	IsActive  bool
	CreatedAt time.Time
}
