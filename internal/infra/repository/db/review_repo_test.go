package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	service_model "github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type ReviewRepoTestSuite struct {
	suite.Suite
	dbDao       *DbDao
	reviewRepo  *ReviewRepo
	productRepo *ProductRepo
	userRepo    *UserRepo
}

func (suite *ReviewRepoTestSuite) SetupSuite() {
	suite.dbDao = testDbDao(suite.T())
	suite.reviewRepo = NewReviewRepo(suite.dbDao)
	suite.productRepo = NewProductRepo(suite.dbDao, nil)
	suite.userRepo = NewUserRepo(suite.dbDao)
}

func (suite *ReviewRepoTestSuite) SetupTest() {
	suite.dbDao.Exec("DELETE FROM reviews")
	suite.dbDao.Exec("DELETE FROM products")
	suite.dbDao.Exec("DELETE FROM users")
}

func (suite *ReviewRepoTestSuite) createTestUser() *model.User {
	user := &model.User{
		UserID:   uuid.New(),
		Email:    uuid.New().String() + "@example.com",
		Name:     "Test User",
		IsActive: true,
	}
	suite.userRepo.CreateUser(context.Background(), user)
	return user
}

func (suite *ReviewRepoTestSuite) createTestProduct() *model.Product {
	product := &model.Product{
		Title: "Test Product",
		Price: decimal.NewFromInt(100),
	}
	suite.productRepo.CreateProduct(context.Background(), product)
	return product
}

func (suite *ReviewRepoTestSuite) TestCreateReview() {
	user := suite.createTestUser()
	product := suite.createTestProduct()

	review := &model.Review{
		CreatorID:   user.UserID,
		ProductID:   product.ProductID,
		Description: "good product",
		Grade:       5,
	}
	err := suite.reviewRepo.CreateReview(context.Background(), review)

	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), review.ReviewID)
}

// 同一個(creator, product)第二筆會撞唯一索引
func (suite *ReviewRepoTestSuite) TestCreateReview_DuplicateViolatesUniqueIndex() {
	user := suite.createTestUser()
	product := suite.createTestProduct()

	err := suite.reviewRepo.CreateReview(context.Background(), &model.Review{
		CreatorID:   user.UserID,
		ProductID:   product.ProductID,
		Description: "first",
		Grade:       5,
	})
	require.NoError(suite.T(), err)

	err = suite.reviewRepo.CreateReview(context.Background(), &model.Review{
		CreatorID:   user.UserID,
		ProductID:   product.ProductID,
		Description: "second",
		Grade:       1,
	})
	require.Error(suite.T(), err)
	require.True(suite.T(), IsUniqueViolation(err))
}

func (suite *ReviewRepoTestSuite) TestCountByCreatorAndProduct() {
	user := suite.createTestUser()
	product := suite.createTestProduct()

	count, err := suite.reviewRepo.CountByCreatorAndProduct(context.Background(), user.UserID, product.ProductID)
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), count)

	suite.reviewRepo.CreateReview(context.Background(), &model.Review{
		CreatorID:   user.UserID,
		ProductID:   product.ProductID,
		Description: "first",
		Grade:       5,
	})

	count, err = suite.reviewRepo.CountByCreatorAndProduct(context.Background(), user.UserID, product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), count)
}

func (suite *ReviewRepoTestSuite) TestGetReviewByID_PreloadsCreator() {
	user := suite.createTestUser()
	product := suite.createTestProduct()

	review := &model.Review{
		CreatorID:   user.UserID,
		ProductID:   product.ProductID,
		Description: "good product",
		Grade:       4,
	}
	suite.reviewRepo.CreateReview(context.Background(), review)

	found, err := suite.reviewRepo.GetReviewByID(context.Background(), review.ReviewID)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), user.Email, found.Creator.Email)
}

func (suite *ReviewRepoTestSuite) TestListReviews_FilterByCreatorAndProduct() {
	userA := suite.createTestUser()
	userB := suite.createTestUser()
	productA := suite.createTestProduct()
	productB := suite.createTestProduct()

	reviews := []*model.Review{
		{CreatorID: userA.UserID, ProductID: productA.ProductID, Description: "a-a", Grade: 5},
		{CreatorID: userA.UserID, ProductID: productB.ProductID, Description: "a-b", Grade: 4},
		{CreatorID: userB.UserID, ProductID: productA.ProductID, Description: "b-a", Grade: 3},
	}
	for _, review := range reviews {
		suite.reviewRepo.CreateReview(context.Background(), review)
	}

	found, total, err := suite.reviewRepo.ListReviews(context.Background(), service_model.ReviewFilter{
		CreatorID: &userA.UserID,
	}, service_model.Paging{Page: 1, PageSize: 10})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(2), total)
	require.Len(suite.T(), found, 2)

	found, total, err = suite.reviewRepo.ListReviews(context.Background(), service_model.ReviewFilter{
		CreatorID: &userA.UserID,
		ProductID: &productB.ProductID,
	}, service_model.Paging{Page: 1, PageSize: 10})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
	require.Equal(suite.T(), "a-b", found[0].Description)
}

func (suite *ReviewRepoTestSuite) TestUpdateReviewFields() {
	user := suite.createTestUser()
	product := suite.createTestProduct()

	review := &model.Review{
		CreatorID:   user.UserID,
		ProductID:   product.ProductID,
		Description: "before",
		Grade:       2,
	}
	suite.reviewRepo.CreateReview(context.Background(), review)

	err := suite.reviewRepo.UpdateReviewFields(context.Background(), review.ReviewID, map[string]any{
		"description": "after",
		"grade":       4,
	})
	require.NoError(suite.T(), err)

	updated, _ := suite.reviewRepo.GetReviewByID(context.Background(), review.ReviewID)
	require.Equal(suite.T(), "after", updated.Description)
	require.Equal(suite.T(), 4, updated.Grade)
}

func (suite *ReviewRepoTestSuite) TestDeleteReview() {
	user := suite.createTestUser()
	product := suite.createTestProduct()

	review := &model.Review{
		CreatorID:   user.UserID,
		ProductID:   product.ProductID,
		Description: "doomed",
		Grade:       1,
	}
	suite.reviewRepo.CreateReview(context.Background(), review)

	err := suite.reviewRepo.DeleteReview(context.Background(), review.ReviewID)
	require.NoError(suite.T(), err)

	found, err := suite.reviewRepo.GetReviewByID(context.Background(), review.ReviewID)
	require.Error(suite.T(), err)
	require.Nil(suite.T(), found)
}

func TestReviewRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRepoTestSuite))
}
