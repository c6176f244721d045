package service

import (
	"context"
	"strings"

	er "github.com/RoyceAzure/rj/util/rj_error"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	dbmodel "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type IReviewService interface {
	// 同一個actor對同一個商品只能建立一筆評論
	CreateReview(ctx context.Context, actor *model.Actor, arg model.CreateReviewModel) (*model.ReviewModel, error)
	GetReview(ctx context.Context, actor *model.Actor, id uint) (*model.ReviewModel, error)
	ListReviews(ctx context.Context, actor *model.Actor, filter model.ReviewFilter, paging model.Paging) ([]model.ReviewModel, int64, error)
	// 只有評論的creator可以修改, admin也不行
	UpdateReview(ctx context.Context, actor *model.Actor, id uint, arg model.UpdateReviewModel) (*model.ReviewModel, error)
	DeleteReview(ctx context.Context, actor *model.Actor, id uint) error
}

type ReviewService struct {
	reviewRepo  db.IReviewRepo
	productRepo db.IProductRepo
	policy      IPolicyService
}

func NewReviewService(reviewRepo db.IReviewRepo, productRepo db.IProductRepo, policy IPolicyService) IReviewService {
	if reviewRepo == nil || productRepo == nil || policy == nil {
		panic("review service missing required dependency")
	}
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		policy:      policy,
	}
}

func convertReviewRepoToModel(r *dbmodel.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID: r.ReviewID,
		Creator: model.UserModel{
			ID:        r.Creator.UserID,
			Email:     r.Creator.Email,
			Name:      r.Creator.Name,
			IsAdmin:   r.Creator.IsAdmin,
			IsActive:  r.Creator.IsActive,
			CreatedAt: r.Creator.CreatedAt,
		},
		ProductID:   r.ProductID,
		Description: r.Description,
		Grade:       r.Grade,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func validateReviewGrade(grade int) error {
	if grade < model.MinReviewGrade || grade > model.MaxReviewGrade {
		return er.New(er.BadRequestCode, "grade must be between 1 and 5")
	}
	return nil
}

func (r *ReviewService) CreateReview(ctx context.Context, actor *model.Actor, arg model.CreateReviewModel) (*model.ReviewModel, error) {
	if err := r.policy.Authorize(actor, constants.ResourceReview, constants.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateReviewGrade(arg.Grade); err != nil {
		return nil, err
	}
	if strings.TrimSpace(arg.Description) == "" {
		return nil, er.New(er.BadRequestCode, "description is required")
	}

	if _, err := r.productRepo.GetProductByID(ctx, arg.ProductID); err != nil {
		if db.IsNotFound(err) {
			return nil, er.New(er.BadRequestCode, "product does not exist")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	count, err := r.reviewRepo.CountByCreatorAndProduct(ctx, actor.ID, arg.ProductID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	if count > 0 {
		return nil, er.New(er.BadRequestCode, "you already posted review for this product")
	}

	review := dbmodel.Review{
		CreatorID:   actor.ID,
		ProductID:   arg.ProductID,
		Description: arg.Description,
		Grade:       arg.Grade,
	}
	if err := r.reviewRepo.CreateReview(ctx, &review); err != nil {
		// pre-check之後的併發重複寫入會撞到uniqueIndex
		if db.IsUniqueViolation(err) {
			return nil, er.New(er.BadRequestCode, "you already posted review for this product")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	created, err := r.reviewRepo.GetReviewByID(ctx, review.ReviewID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return convertReviewRepoToModel(created), nil
}

func (r *ReviewService) GetReview(ctx context.Context, actor *model.Actor, id uint) (*model.ReviewModel, error) {
	if err := r.policy.Authorize(actor, constants.ResourceReview, constants.ActionRead); err != nil {
		return nil, err
	}

	review, err := r.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertReviewRepoToModel(review), nil
}

func (r *ReviewService) ListReviews(ctx context.Context, actor *model.Actor, filter model.ReviewFilter, paging model.Paging) ([]model.ReviewModel, int64, error) {
	if err := r.policy.Authorize(actor, constants.ResourceReview, constants.ActionRead); err != nil {
		return nil, 0, err
	}

	reviews, total, err := r.reviewRepo.ListReviews(ctx, filter, paging.Normalize())
	if err != nil {
		return nil, 0, er.New(er.InternalErrorCode, err.Error())
	}

	reviewModels := make([]model.ReviewModel, 0, len(reviews))
	for i := range reviews {
		reviewModels = append(reviewModels, *convertReviewRepoToModel(&reviews[i]))
	}
	return reviewModels, total, nil
}

func (r *ReviewService) UpdateReview(ctx context.Context, actor *model.Actor, id uint, arg model.UpdateReviewModel) (*model.ReviewModel, error) {
	review, err := r.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	if err := r.policy.AuthorizeOwner(actor, constants.ResourceReview, constants.ActionUpdate, review.CreatorID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if arg.Description != nil {
		if strings.TrimSpace(*arg.Description) == "" {
			return nil, er.New(er.BadRequestCode, "description is required")
		}
		updates["description"] = *arg.Description
	}
	if arg.Grade != nil {
		if err := validateReviewGrade(*arg.Grade); err != nil {
			return nil, err
		}
		updates["grade"] = *arg.Grade
	}

	if len(updates) > 0 {
		if err := r.reviewRepo.UpdateReviewFields(ctx, id, updates); err != nil {
			return nil, er.New(er.InternalErrorCode, err.Error())
		}
	}

	updated, err := r.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return convertReviewRepoToModel(updated), nil
}

func (r *ReviewService) DeleteReview(ctx context.Context, actor *model.Actor, id uint) error {
	review, err := r.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return ErrReviewNotFound
		}
		return er.New(er.InternalErrorCode, err.Error())
	}

	if err := r.policy.AuthorizeOwner(actor, constants.ResourceReview, constants.ActionDelete, review.CreatorID); err != nil {
		return err
	}

	if err := r.reviewRepo.DeleteReview(ctx, id); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}
