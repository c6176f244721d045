package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID          uint
	Title       string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateProductModel struct {
	Title       string
	Description string
	Price       decimal.Decimal
}

// UpdateProductModel 可變更欄位的明確清單，nil代表不變更
type UpdateProductModel struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
}

// ProductFilter 查詢條件，nil/空值代表該條件不限制
type ProductFilter struct {
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	Title       string
	Description string
}
