package service

import (
	"context"
	"testing"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	dbmodel "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

func setupReviewService(t *testing.T) (IReviewService, *fakeProductRepo) {
	t.Helper()
	productRepo := newFakeProductRepo()
	reviewService := NewReviewService(newFakeReviewRepo(), productRepo, NewPolicyService(nil))
	return reviewService, productRepo
}

func createTestProduct(t *testing.T, productRepo *fakeProductRepo) *dbmodel.Product {
	t.Helper()
	product := &dbmodel.Product{
		Title: "Test Product",
		Price: decimal.NewFromFloat(19.99),
	}
	require.NoError(t, productRepo.CreateProduct(context.Background(), product))
	return product
}

func TestCreateReview(t *testing.T) {
	reviewService, productRepo := setupReviewService(t)
	product := createTestProduct(t, productRepo)
	actor := &model.Actor{ID: uuid.New()}

	review, err := reviewService.CreateReview(context.Background(), actor, model.CreateReviewModel{
		ProductID:   product.ProductID,
		Description: "good product",
		Grade:       5,
	})

	require.NoError(t, err)
	require.Equal(t, product.ProductID, review.ProductID)
	require.Equal(t, 5, review.Grade)
}

func TestCreateReview_Duplicate(t *testing.T) {
	reviewService, productRepo := setupReviewService(t)
	product := createTestProduct(t, productRepo)
	actor := &model.Actor{ID: uuid.New()}

	_, err := reviewService.CreateReview(context.Background(), actor, model.CreateReviewModel{
		ProductID:   product.ProductID,
		Description: "good product",
		Grade:       5,
	})
	require.NoError(t, err)

	// 同一個人對同一個商品第二篇會被擋
	_, err = reviewService.CreateReview(context.Background(), actor, model.CreateReviewModel{
		ProductID:   product.ProductID,
		Description: "changed my mind",
		Grade:       1,
	})
	require.Error(t, err)
	require.Equal(t, int(er.BadRequestCode), errCode(t, err))

	// 換一個人可以
	_, err = reviewService.CreateReview(context.Background(), &model.Actor{ID: uuid.New()}, model.CreateReviewModel{
		ProductID:   product.ProductID,
		Description: "also good",
		Grade:       4,
	})
	require.NoError(t, err)
}

func TestCreateReview_InvalidGrade(t *testing.T) {
	reviewService, productRepo := setupReviewService(t)
	product := createTestProduct(t, productRepo)
	actor := &model.Actor{ID: uuid.New()}

	for _, grade := range []int{0, 6, -1} {
		_, err := reviewService.CreateReview(context.Background(), actor, model.CreateReviewModel{
			ProductID:   product.ProductID,
			Description: "desc",
			Grade:       grade,
		})
		require.Error(t, err)
		require.Equal(t, int(er.BadRequestCode), errCode(t, err))
	}
}

func TestCreateReview_ProductMissing(t *testing.T) {
	reviewService, _ := setupReviewService(t)
	actor := &model.Actor{ID: uuid.New()}

	_, err := reviewService.CreateReview(context.Background(), actor, model.CreateReviewModel{
		ProductID:   999,
		Description: "desc",
		Grade:       3,
	})
	require.Error(t, err)
	require.Equal(t, int(er.BadRequestCode), errCode(t, err))
}

func TestCreateReview_Anonymous(t *testing.T) {
	reviewService, productRepo := setupReviewService(t)
	product := createTestProduct(t, productRepo)

	_, err := reviewService.CreateReview(context.Background(), nil, model.CreateReviewModel{
		ProductID:   product.ProductID,
		Description: "desc",
		Grade:       3,
	})
	require.Error(t, err)
	require.Equal(t, int(er.UnauthenticatedCode), errCode(t, err))
}

func TestUpdateReview_OnlyCreator(t *testing.T) {
	reviewService, productRepo := setupReviewService(t)
	product := createTestProduct(t, productRepo)
	creator := &model.Actor{ID: uuid.New()}

	review, err := reviewService.CreateReview(context.Background(), creator, model.CreateReviewModel{
		ProductID:   product.ProductID,
		Description: "first impression",
		Grade:       3,
	})
	require.NoError(t, err)

	newGrade := 5
	updated, err := reviewService.UpdateReview(context.Background(), creator, review.ID, model.UpdateReviewModel{
		Grade: &newGrade,
	})
	require.NoError(t, err)
	require.Equal(t, 5, updated.Grade)

	// admin也不能改別人的評論
	admin := &model.Actor{ID: uuid.New(), IsAdmin: true}
	_, err = reviewService.UpdateReview(context.Background(), admin, review.ID, model.UpdateReviewModel{
		Grade: &newGrade,
	})
	require.Error(t, err)
	require.Equal(t, int(er.UnauthorizedCode), errCode(t, err))
}

func TestDeleteReview_NotFound(t *testing.T) {
	reviewService, _ := setupReviewService(t)
	actor := &model.Actor{ID: uuid.New()}

	err := reviewService.DeleteReview(context.Background(), actor, 999)
	require.ErrorIs(t, err, ErrReviewNotFound)
}
