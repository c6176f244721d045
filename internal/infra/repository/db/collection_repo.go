package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	service_model "github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type ICollectionRepo interface {
	CreateCollection(ctx context.Context, collection *model.Collection) error
	GetCollectionByID(ctx context.Context, id uint) (*model.Collection, error)
	ListCollections(ctx context.Context, paging service_model.Paging) ([]model.Collection, int64, error)
	UpdateCollection(ctx context.Context, id uint, updates map[string]any, products []model.Product) error
	DeleteCollection(ctx context.Context, id uint) error
}

type CollectionRepo struct {
	db *DbDao
}

func NewCollectionRepo(db *DbDao) *CollectionRepo {
	return &CollectionRepo{db: db}
}

// Create - 創建商品集合, 只寫join table不動商品本身
func (s *CollectionRepo) CreateCollection(ctx context.Context, collection *model.Collection) error {
	return s.db.WithContext(ctx).Omit("Products.*").Create(collection).Error
}

// Read - 根據ID查詢商品集合
func (s *CollectionRepo) GetCollectionByID(ctx context.Context, id uint) (*model.Collection, error) {
	var collection model.Collection
	err := s.db.WithContext(ctx).Preload("Products").First(&collection, id).Error
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

// Read - 分頁查詢商品集合
func (s *CollectionRepo) ListCollections(ctx context.Context, paging service_model.Paging) ([]model.Collection, int64, error) {
	var collections []model.Collection
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Collection{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Products").Order("collection_id").Offset(paging.Offset()).Limit(paging.PageSize).Find(&collections).Error

	return collections, total, err
}

// Update - 更新商品集合, products為nil代表關聯不變更
func (s *CollectionRepo) UpdateCollection(ctx context.Context, id uint, updates map[string]any, products []model.Product) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&model.Collection{}).Where("collection_id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if products != nil {
			collection := model.Collection{CollectionID: id}
			if err := tx.Model(&collection).Association("Products").Replace(products); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete - 刪除商品集合與其關聯
func (s *CollectionRepo) DeleteCollection(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		collection := model.Collection{CollectionID: id}
		if err := tx.Model(&collection).Association("Products").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Collection{}, id).Error
	})
}
