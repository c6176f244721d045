package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductDTO 表示商品資訊
type ProductDTO struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateProductDTO struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductDTO 部分更新, 缺漏欄位代表不變更
type UpdateProductDTO struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

type ListProductsResponse struct {
	Total int64        `json:"total"`
	Items []ProductDTO `json:"items"`
}
