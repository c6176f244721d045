package dto

import "time"

// ReviewDTO 表示商品評論資訊
type ReviewDTO struct {
	ID          uint      `json:"id"`
	Creator     UserDTO   `json:"creator"`
	ProductID   uint      `json:"product_id"`
	Description string    `json:"description"`
	Grade       int       `json:"grade"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// creator不由client指定, 一律取當前登入者
type CreateReviewDTO struct {
	ProductID   uint   `json:"product_id"`
	Description string `json:"description"`
	Grade       int    `json:"grade"`
}

type UpdateReviewDTO struct {
	Description *string `json:"description"`
	Grade       *int    `json:"grade"`
}

type ListReviewsResponse struct {
	Total int64       `json:"total"`
	Items []ReviewDTO `json:"items"`
}
