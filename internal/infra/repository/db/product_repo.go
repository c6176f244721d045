package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis_cache "github.com/RoyceAzure/lab/rj_redis/pkg/cache"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	service_model "github.com/RoyceAzure/lab/shopcenter/internal/model"
)

const productCacheTTL = time.Hour

type IProductRepo interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context, filter service_model.ProductFilter, paging service_model.Paging) ([]model.Product, int64, error)
	UpdateProductFields(ctx context.Context, id uint, updates map[string]any) error
	DeleteProduct(ctx context.Context, id uint) error
}

// 商品讀取走redis read-through cache, cache miss或cache未設置時落到db
type ProductRepo struct {
	productCache redis_cache.Cache
	db           *DbDao
}

func NewProductRepo(db *DbDao, productCache redis_cache.Cache) *ProductRepo {
	return &ProductRepo{db: db, productCache: productCache}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品
func (s *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	if s.productCache != nil {
		if cached, err := s.productCache.Get(ctx, productCacheKey(id)); err == nil {
			if cachedStr, ok := cached.(string); ok {
				var product model.Product
				if err := json.Unmarshal([]byte(cachedStr), &product); err == nil {
					return &product, nil
				}
			}
		}
	}

	var product model.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}

	if s.productCache != nil {
		if productJSON, err := json.Marshal(product); err == nil {
			// cache寫入失敗不影響查詢結果
			_ = s.productCache.Set(ctx, productCacheKey(id), productJSON, productCacheTTL)
		}
	}

	return &product, nil
}

// Read - 條件分頁查詢商品
func (s *ProductRepo) ListProducts(ctx context.Context, filter service_model.ProductFilter, paging service_model.Paging) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Product{})

	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Title+"%")
	}
	if filter.Description != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Description+"%")
	}

	// 計算總數
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分頁查詢
	err := query.Order("product_id").Offset(paging.Offset()).Limit(paging.PageSize).Find(&products).Error

	return products, total, err
}

// Update - 部分更新商品
func (s *ProductRepo) UpdateProductFields(ctx context.Context, id uint, updates map[string]any) error {
	err := s.db.WithContext(ctx).Model(&model.Product{}).Where("product_id = ?", id).Updates(updates).Error
	if err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// Delete - 硬刪除商品, reviews與order_positions由FK級聯刪除
func (s *ProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Delete(&model.Product{}, id).Error
	if err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductRepo) invalidate(ctx context.Context, id uint) {
	if s.productCache != nil {
		_ = s.productCache.Delete(ctx, productCacheKey(id))
	}
}
