package model

import "github.com/google/uuid"

// 使用者由authcenter發token, 這邊只保存身份與權限旗標
type User struct {
	UserID   uuid.UUID `gorm:"primaryKey;type:uuid"`
	Email    string    `gorm:"unique;not null;type:varchar(100)"`
	Name     string    `gorm:"type:varchar(50)"`
	IsAdmin  bool      `gorm:"not null;default:false"`
	IsActive bool      `gorm:"not null;default:true"`
	BaseModel
}
