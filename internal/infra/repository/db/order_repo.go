package db

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	service_model "github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type IOrderRepo interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	ListOrders(ctx context.Context, creatorID *uuid.UUID, filter service_model.OrderFilter, paging service_model.Paging) ([]model.Order, int64, error)
	UpdateOrder(ctx context.Context, id uint, updates map[string]any, positions []model.OrderPosition) error
	DeleteOrder(ctx context.Context, id uint) error
}

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create - 創建訂單, 明細一併寫入
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("Positions").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 條件分頁查詢訂單
// creatorID非nil時限縮到該使用者的訂單 (非admin只能看到自己的)
func (s *OrderRepo) ListOrders(ctx context.Context, creatorID *uuid.UUID, filter service_model.OrderFilter, paging service_model.Paging) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Order{})

	if creatorID != nil {
		query = query.Where("creator_id = ?", *creatorID)
	}
	if filter.Status != "" {
		// 不合法的狀態值不會匹配任何資料列, 不視為錯誤
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TotalMin != nil {
		query = query.Where("total_amount >= ?", *filter.TotalMin)
	}
	if filter.TotalMax != nil {
		query = query.Where("total_amount <= ?", *filter.TotalMax)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("orders.created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("orders.created_at <= ?", *filter.CreatedTo)
	}
	if filter.UpdatedFrom != nil {
		query = query.Where("orders.updated_at >= ?", *filter.UpdatedFrom)
	}
	if filter.UpdatedTo != nil {
		query = query.Where("orders.updated_at <= ?", *filter.UpdatedTo)
	}
	if filter.ProductTitle != "" {
		// join明細與商品後用商品名稱模糊過濾
		sub := s.db.WithContext(ctx).Model(&model.OrderPosition{}).
			Select("order_positions.order_id").
			Joins("JOIN products ON products.product_id = order_positions.product_id").
			Where("products.title ILIKE ?", "%"+filter.ProductTitle+"%")
		query = query.Where("orders.order_id IN (?)", sub)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Positions").Order("orders.order_id").Offset(paging.Offset()).Limit(paging.PageSize).Find(&orders).Error

	return orders, total, err
}

// Update - 更新訂單, 欄位更新與明細替換走同一個交易
// positions為nil代表明細不變更
func (s *OrderRepo) UpdateOrder(ctx context.Context, id uint, updates map[string]any, positions []model.OrderPosition) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if positions != nil {
			if err := tx.Where("order_id = ?", id).Delete(&model.OrderPosition{}).Error; err != nil {
				return err
			}
			for i := range positions {
				positions[i].OrderID = id
			}
			if err := tx.Create(&positions).Error; err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(&model.Order{}).Where("order_id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete - 硬刪除訂單, 明細由FK級聯刪除
func (s *OrderRepo) DeleteOrder(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Order{}, id).Error
}
