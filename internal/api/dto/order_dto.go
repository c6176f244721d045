package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderPositionDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderDTO 表示訂單資訊
type OrderDTO struct {
	ID          uint               `json:"id"`
	CreatorID   string             `json:"creator_id"`
	Status      string             `json:"status"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Positions   []OrderPositionDTO `json:"positions"`
	Quantity    int                `json:"quantity"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateOrderDTO 建立訂單只需要明細
// Status與金額由server決定, client帶入會被忽略
type CreateOrderDTO struct {
	Positions []OrderPositionDTO `json:"positions"`
	Status    string             `json:"status"`
}

// UpdateOrderDTO Positions缺漏代表不變更, 帶入代表全量替換
type UpdateOrderDTO struct {
	Status    *string            `json:"status"`
	Positions []OrderPositionDTO `json:"positions"`
}

type ListOrdersResponse struct {
	Total int64      `json:"total"`
	Items []OrderDTO `json:"items"`
}
