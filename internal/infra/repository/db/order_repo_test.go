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

type OrderRepoTestSuite struct {
	suite.Suite
	dbDao       *DbDao
	orderRepo   *OrderRepo
	productRepo *ProductRepo
	userRepo    *UserRepo
}

func (suite *OrderRepoTestSuite) SetupSuite() {
	suite.dbDao = testDbDao(suite.T())
	suite.orderRepo = NewOrderRepo(suite.dbDao)
	suite.productRepo = NewProductRepo(suite.dbDao, nil)
	suite.userRepo = NewUserRepo(suite.dbDao)
}

func (suite *OrderRepoTestSuite) SetupTest() {
	suite.dbDao.Exec("DELETE FROM order_positions")
	suite.dbDao.Exec("DELETE FROM orders")
	suite.dbDao.Exec("DELETE FROM products")
	suite.dbDao.Exec("DELETE FROM users")
}

func (suite *OrderRepoTestSuite) createTestUser() *model.User {
	user := &model.User{
		UserID:   uuid.New(),
		Email:    uuid.New().String() + "@example.com",
		Name:     "Test User",
		IsActive: true,
	}
	suite.userRepo.CreateUser(context.Background(), user)
	return user
}

func (suite *OrderRepoTestSuite) createTestProduct(title string) *model.Product {
	product := &model.Product{
		Title: title,
		Price: decimal.NewFromInt(100),
	}
	suite.productRepo.CreateProduct(context.Background(), product)
	return product
}

func (suite *OrderRepoTestSuite) createTestOrder(creatorID uuid.UUID, status string, products ...*model.Product) *model.Order {
	positions := make([]model.OrderPosition, 0, len(products))
	for _, product := range products {
		positions = append(positions, model.OrderPosition{
			ProductID: product.ProductID,
			Quantity:  1,
		})
	}
	order := &model.Order{
		CreatorID:   creatorID,
		Status:      status,
		TotalAmount: decimal.NewFromInt(int64(len(products)) * 100),
		Positions:   positions,
	}
	suite.orderRepo.CreateOrder(context.Background(), order)
	return order
}

func (suite *OrderRepoTestSuite) TestCreateOrder_WithPositions() {
	user := suite.createTestUser()
	product := suite.createTestProduct("Phone")

	order := suite.createTestOrder(user.UserID, "NEW", product)

	require.NotZero(suite.T(), order.OrderID)

	found, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), found.Positions, 1)
	require.Equal(suite.T(), product.ProductID, found.Positions[0].ProductID)
}

func (suite *OrderRepoTestSuite) TestListOrders_ScopedByCreator() {
	userA := suite.createTestUser()
	userB := suite.createTestUser()
	product := suite.createTestProduct("Phone")

	suite.createTestOrder(userA.UserID, "NEW", product)
	suite.createTestOrder(userA.UserID, "NEW", product)
	suite.createTestOrder(userB.UserID, "NEW", product)

	orders, total, err := suite.orderRepo.ListOrders(context.Background(), &userA.UserID, service_model.OrderFilter{}, service_model.Paging{Page: 1, PageSize: 10})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(2), total)
	require.Len(suite.T(), orders, 2)

	// creatorID為nil時不限縮
	_, total, err = suite.orderRepo.ListOrders(context.Background(), nil, service_model.OrderFilter{}, service_model.Paging{Page: 1, PageSize: 10})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(3), total)
}

func (suite *OrderRepoTestSuite) TestListOrders_StatusFilter() {
	user := suite.createTestUser()
	product := suite.createTestProduct("Phone")

	suite.createTestOrder(user.UserID, "NEW", product)
	suite.createTestOrder(user.UserID, "DONE", product)

	orders, total, err := suite.orderRepo.ListOrders(context.Background(), nil, service_model.OrderFilter{
		Status: "DONE",
	}, service_model.Paging{Page: 1, PageSize: 10})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
	require.Equal(suite.T(), "DONE", orders[0].Status)

	// 不合法的狀態值不匹配任何資料列
	_, total, err = suite.orderRepo.ListOrders(context.Background(), nil, service_model.OrderFilter{
		Status: "SHIPPED",
	}, service_model.Paging{Page: 1, PageSize: 10})
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), total)
}

func (suite *OrderRepoTestSuite) TestListOrders_ProductTitleFilter() {
	user := suite.createTestUser()
	phone := suite.createTestProduct("Black Phone")
	laptop := suite.createTestProduct("White Laptop")

	suite.createTestOrder(user.UserID, "NEW", phone)
	suite.createTestOrder(user.UserID, "NEW", laptop)

	orders, total, err := suite.orderRepo.ListOrders(context.Background(), nil, service_model.OrderFilter{
		ProductTitle: "phone",
	}, service_model.Paging{Page: 1, PageSize: 10})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
	require.Len(suite.T(), orders, 1)
	require.Equal(suite.T(), phone.ProductID, orders[0].Positions[0].ProductID)
}

func (suite *OrderRepoTestSuite) TestListOrders_CanceledContext() {
	user := suite.createTestUser()
	product := suite.createTestProduct("Phone")
	suite.createTestOrder(user.UserID, "NEW", product)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := suite.orderRepo.ListOrders(ctx, nil, service_model.OrderFilter{
		ProductTitle: "phone",
	}, service_model.Paging{Page: 1, PageSize: 10})
	require.Error(suite.T(), err)
}

func (suite *OrderRepoTestSuite) TestListOrders_TotalRangeFilter() {
	user := suite.createTestUser()
	productA := suite.createTestProduct("A")
	productB := suite.createTestProduct("B")

	suite.createTestOrder(user.UserID, "NEW", productA)           // 100
	suite.createTestOrder(user.UserID, "NEW", productA, productB) // 200

	totalMin := decimal.NewFromInt(150)
	_, total, err := suite.orderRepo.ListOrders(context.Background(), nil, service_model.OrderFilter{
		TotalMin: &totalMin,
	}, service_model.Paging{Page: 1, PageSize: 10})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
}

func (suite *OrderRepoTestSuite) TestUpdateOrder_ReplacesPositions() {
	user := suite.createTestUser()
	productA := suite.createTestProduct("A")
	productB := suite.createTestProduct("B")

	order := suite.createTestOrder(user.UserID, "NEW", productA)

	err := suite.orderRepo.UpdateOrder(context.Background(), order.OrderID, map[string]any{
		"total_amount": decimal.NewFromInt(300),
	}, []model.OrderPosition{
		{ProductID: productB.ProductID, Quantity: 3},
	})
	require.NoError(suite.T(), err)

	updated, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), updated.Positions, 1)
	require.Equal(suite.T(), productB.ProductID, updated.Positions[0].ProductID)
	require.Equal(suite.T(), 3, updated.Positions[0].Quantity)
	require.True(suite.T(), decimal.NewFromInt(300).Equal(updated.TotalAmount))
}

func (suite *OrderRepoTestSuite) TestUpdateOrder_StatusOnlyKeepsPositions() {
	user := suite.createTestUser()
	product := suite.createTestProduct("Phone")

	order := suite.createTestOrder(user.UserID, "NEW", product)

	// positions為nil代表明細不動
	err := suite.orderRepo.UpdateOrder(context.Background(), order.OrderID, map[string]any{
		"status": "DONE",
	}, nil)
	require.NoError(suite.T(), err)

	updated, _ := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.Equal(suite.T(), "DONE", updated.Status)
	require.Len(suite.T(), updated.Positions, 1)
}

func (suite *OrderRepoTestSuite) TestDeleteOrder_CascadesPositions() {
	user := suite.createTestUser()
	product := suite.createTestProduct("Phone")

	order := suite.createTestOrder(user.UserID, "NEW", product)

	err := suite.orderRepo.DeleteOrder(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)

	found, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.Error(suite.T(), err)
	require.Nil(suite.T(), found)

	var count int64
	suite.dbDao.Model(&model.OrderPosition{}).Where("order_id = ?", order.OrderID).Count(&count)
	require.Zero(suite.T(), count)
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}
