package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID     uint            `gorm:"primaryKey"`
	CreatorID   uuid.UUID       `gorm:"not null;type:uuid;index"`
	Status      string          `gorm:"not null;type:varchar(20);default:'NEW'"`
	TotalAmount decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Positions   []OrderPosition `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
	BaseModel
}

type OrderPosition struct {
	OrderID   uint    `gorm:"primaryKey"` // 外鍵，關聯到 Order
	ProductID uint    `gorm:"primaryKey"` // 外鍵，關聯到 Product
	Quantity  int     `gorm:"not null;default:1"`
	Product   Product `gorm:"foreignKey:ProductID"`
}
