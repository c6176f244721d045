package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   uint            `gorm:"primaryKey"`
	Title       string          `gorm:"not null;type:varchar(50)"`
	Description string          `gorm:"not null;default:'';type:text"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Reviews     []Review        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
	Positions   []OrderPosition `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
	BaseModel
}
