package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinReviewGrade = 1
	MaxReviewGrade = 5
)

type ReviewModel struct {
	ID          uint
	Creator     UserModel
	ProductID   uint
	Description string
	Grade       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// creator一律由當前actor帶入，不信任client傳入的值
type CreateReviewModel struct {
	ProductID   uint
	Description string
	Grade       int
}

type UpdateReviewModel struct {
	Description *string
	Grade       *int
}

type ReviewFilter struct {
	CreatorID   *uuid.UUID
	ProductID   *uint
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
