package model

type Collection struct {
	CollectionID uint      `gorm:"primaryKey"`
	Title        string    `gorm:"not null;type:text"`
	Description  string    `gorm:"not null;default:'';type:text"`
	Products     []Product `gorm:"many2many:collection_products;constraint:OnDelete:CASCADE"`
	BaseModel
}
