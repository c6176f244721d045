package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "NEW"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusDone       OrderStatus = "DONE"
)

func IsValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusDone:
		return true
	default:
		return false
	}
}

type OrderPositionModel struct {
	ProductID uint
	Quantity  int
}

type OrderModel struct {
	ID          uint
	CreatorID   uuid.UUID
	Status      OrderStatus
	TotalAmount decimal.Decimal
	Positions   []OrderPositionModel
	// Quantity 衍生欄位，訂單明細筆數
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// 狀態固定從NEW開始，金額由明細計算，皆不由client指定
type CreateOrderModel struct {
	Positions []OrderPositionModel
}

// UpdateOrderModel Positions為nil代表不變更，非nil代表全量替換
// Status只有admin可以變更，非admin帶入會被靜默忽略
type UpdateOrderModel struct {
	Status    *OrderStatus
	Positions []OrderPositionModel
}

type OrderFilter struct {
	Status       string
	TotalMin     *decimal.Decimal
	TotalMax     *decimal.Decimal
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	UpdatedFrom  *time.Time
	UpdatedTo    *time.Time
	ProductTitle string
}
