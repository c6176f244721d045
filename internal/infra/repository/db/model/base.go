package model

import "time"

// BaseModel 共用的時間欄位，由store維護，外部唯讀
type BaseModel struct {
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
