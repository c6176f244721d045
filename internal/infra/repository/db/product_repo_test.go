package db

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	service_model "github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type ProductRepoTestSuite struct {
	suite.Suite
	dbDao       *DbDao
	productRepo *ProductRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *ProductRepoTestSuite) SetupSuite() {
	suite.dbDao = testDbDao(suite.T())
	// cache為nil時直接走db
	suite.productRepo = NewProductRepo(suite.dbDao, nil)
}

// SetupTest 在每個測試前執行
func (suite *ProductRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.dbDao.Exec("DELETE FROM order_positions")
	suite.dbDao.Exec("DELETE FROM reviews")
	suite.dbDao.Exec("DELETE FROM collection_products")
	suite.dbDao.Exec("DELETE FROM products")
}

func (suite *ProductRepoTestSuite) TestCreateProduct() {
	product := &model.Product{
		Title: "Test Product",
		Price: decimal.NewFromFloat(19.99),
	}

	err := suite.productRepo.CreateProduct(context.Background(), product)

	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), product.ProductID)
	require.False(suite.T(), product.CreatedAt.IsZero())
}

func (suite *ProductRepoTestSuite) TestGetProductByID() {
	product := &model.Product{
		Title: "Test Product",
		Price: decimal.NewFromFloat(19.99),
	}
	suite.productRepo.CreateProduct(context.Background(), product)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), product.Title, found.Title)
	require.True(suite.T(), product.Price.Equal(found.Price))
}

func (suite *ProductRepoTestSuite) TestGetProductByID_NotFound() {
	found, err := suite.productRepo.GetProductByID(context.Background(), 999999)

	require.Error(suite.T(), err)
	require.True(suite.T(), IsNotFound(err))
	require.Nil(suite.T(), found)
}

func (suite *ProductRepoTestSuite) TestListProducts_PriceFilter() {
	prices := []string{"5.00", "15.00", "25.00"}
	for _, price := range prices {
		suite.productRepo.CreateProduct(context.Background(), &model.Product{
			Title: "Product " + price,
			Price: decimal.RequireFromString(price),
		})
	}

	priceMin := decimal.RequireFromString("10")
	priceMax := decimal.RequireFromString("20")
	products, total, err := suite.productRepo.ListProducts(context.Background(), service_model.ProductFilter{
		PriceMin: &priceMin,
		PriceMax: &priceMax,
	}, service_model.Paging{Page: 1, PageSize: 10})

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
	require.Len(suite.T(), products, 1)
	require.True(suite.T(), decimal.RequireFromString("15.00").Equal(products[0].Price))
}

func (suite *ProductRepoTestSuite) TestListProducts_TitleFilter() {
	suite.productRepo.CreateProduct(context.Background(), &model.Product{Title: "Black Phone", Price: decimal.NewFromInt(100)})
	suite.productRepo.CreateProduct(context.Background(), &model.Product{Title: "White Laptop", Price: decimal.NewFromInt(200)})

	// 模糊查詢不分大小寫
	products, total, err := suite.productRepo.ListProducts(context.Background(), service_model.ProductFilter{
		Title: "phone",
	}, service_model.Paging{Page: 1, PageSize: 10})

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
	require.Equal(suite.T(), "Black Phone", products[0].Title)
}

func (suite *ProductRepoTestSuite) TestListProducts_Paginated() {
	for i := 0; i < 25; i++ {
		suite.productRepo.CreateProduct(context.Background(), &model.Product{
			Title: "Product",
			Price: decimal.NewFromInt(int64(i + 1)),
		})
	}

	products, total, err := suite.productRepo.ListProducts(context.Background(), service_model.ProductFilter{}, service_model.Paging{Page: 3, PageSize: 10})

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(25), total)
	require.Len(suite.T(), products, 5)
}

func (suite *ProductRepoTestSuite) TestUpdateProductFields() {
	product := &model.Product{
		Title: "Old Title",
		Price: decimal.NewFromInt(10),
	}
	suite.productRepo.CreateProduct(context.Background(), product)

	err := suite.productRepo.UpdateProductFields(context.Background(), product.ProductID, map[string]any{
		"title": "New Title",
		"price": decimal.NewFromInt(20),
	})
	require.NoError(suite.T(), err)

	updated, _ := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.Equal(suite.T(), "New Title", updated.Title)
	require.True(suite.T(), decimal.NewFromInt(20).Equal(updated.Price))
}

func (suite *ProductRepoTestSuite) TestDeleteProduct() {
	product := &model.Product{
		Title: "Doomed Product",
		Price: decimal.NewFromInt(10),
	}
	suite.productRepo.CreateProduct(context.Background(), product)

	err := suite.productRepo.DeleteProduct(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.Error(suite.T(), err)
	require.Nil(suite.T(), found)
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}
