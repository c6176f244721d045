package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	service_model "github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type IReviewRepo interface {
	CreateReview(ctx context.Context, review *model.Review) error
	GetReviewByID(ctx context.Context, id uint) (*model.Review, error)
	ListReviews(ctx context.Context, filter service_model.ReviewFilter, paging service_model.Paging) ([]model.Review, int64, error)
	CountByCreatorAndProduct(ctx context.Context, creatorID uuid.UUID, productID uint) (int64, error)
	UpdateReviewFields(ctx context.Context, id uint, updates map[string]any) error
	DeleteReview(ctx context.Context, id uint) error
}

type ReviewRepo struct {
	db *DbDao
}

func NewReviewRepo(db *DbDao) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Create - 創建評論
func (s *ReviewRepo) CreateReview(ctx context.Context, review *model.Review) error {
	return s.db.WithContext(ctx).Create(review).Error
}

// Read - 根據ID查詢評論
func (s *ReviewRepo) GetReviewByID(ctx context.Context, id uint) (*model.Review, error) {
	var review model.Review
	err := s.db.WithContext(ctx).Preload("Creator").First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Read - 條件分頁查詢評論
func (s *ReviewRepo) ListReviews(ctx context.Context, filter service_model.ReviewFilter, paging service_model.Paging) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Review{})

	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Creator").Order("review_id").Offset(paging.Offset()).Limit(paging.PageSize).Find(&reviews).Error

	return reviews, total, err
}

// 同一個(creator, product)最多只能有一筆評論, 建立前的pre-check用
func (s *ReviewRepo) CountByCreatorAndProduct(ctx context.Context, creatorID uuid.UUID, productID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Review{}).
		Where("creator_id = ? AND product_id = ?", creatorID, productID).
		Count(&count).Error
	return count, err
}

// Update - 部分更新評論
func (s *ReviewRepo) UpdateReviewFields(ctx context.Context, id uint, updates map[string]any) error {
	return s.db.WithContext(ctx).Model(&model.Review{}).Where("review_id = ?", id).Updates(updates).Error
}

// Delete - 刪除評論
func (s *ReviewRepo) DeleteReview(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Review{}, id).Error
}
