package model

import "github.com/google/uuid"

// 同一個使用者對同一個商品只能有一筆評論
// uniqueIndex擋掉pre-check之後的併發重複寫入
type Review struct {
	ReviewID    uint      `gorm:"primaryKey"`
	CreatorID   uuid.UUID `gorm:"not null;type:uuid;uniqueIndex:idx_reviews_creator_product"`
	ProductID   uint      `gorm:"not null;uniqueIndex:idx_reviews_creator_product"`
	Description string    `gorm:"not null;type:text"`
	Grade       int       `gorm:"not null"`
	Creator     User      `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	BaseModel
}
