package dto

import "time"

// UserDTO 表示用戶資訊
type UserDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ListProfilesResponse struct {
	Total int64     `json:"total"`
	Items []UserDTO `json:"items"`
}
