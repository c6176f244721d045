package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dbmodel "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

// in-memory的repo替身, service層測試不需要db

type fakeProductRepo struct {
	products map[uint]*dbmodel.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*dbmodel.Product{}}
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, product *dbmodel.Product) error {
	f.nextID++
	product.ProductID = f.nextID
	stored := *product
	f.products[product.ProductID] = &stored
	return nil
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, id uint) (*dbmodel.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *product
	return &found, nil
}

func (f *fakeProductRepo) ListProducts(ctx context.Context, filter model.ProductFilter, paging model.Paging) ([]dbmodel.Product, int64, error) {
	var products []dbmodel.Product
	for _, product := range f.products {
		products = append(products, *product)
	}
	return products, int64(len(products)), nil
}

func (f *fakeProductRepo) UpdateProductFields(ctx context.Context, id uint, updates map[string]any) error {
	product, ok := f.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["title"]; ok {
		product.Title = v.(string)
	}
	if v, ok := updates["description"]; ok {
		product.Description = v.(string)
	}
	return nil
}

func (f *fakeProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	delete(f.products, id)
	return nil
}

type fakeReviewRepo struct {
	reviews map[uint]*dbmodel.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uint]*dbmodel.Review{}}
}

func (f *fakeReviewRepo) CreateReview(ctx context.Context, review *dbmodel.Review) error {
	f.nextID++
	review.ReviewID = f.nextID
	stored := *review
	f.reviews[review.ReviewID] = &stored
	return nil
}

func (f *fakeReviewRepo) GetReviewByID(ctx context.Context, id uint) (*dbmodel.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *review
	return &found, nil
}

func (f *fakeReviewRepo) ListReviews(ctx context.Context, filter model.ReviewFilter, paging model.Paging) ([]dbmodel.Review, int64, error) {
	var reviews []dbmodel.Review
	for _, review := range f.reviews {
		if filter.CreatorID != nil && review.CreatorID != *filter.CreatorID {
			continue
		}
		if filter.ProductID != nil && review.ProductID != *filter.ProductID {
			continue
		}
		reviews = append(reviews, *review)
	}
	return reviews, int64(len(reviews)), nil
}

func (f *fakeReviewRepo) CountByCreatorAndProduct(ctx context.Context, creatorID uuid.UUID, productID uint) (int64, error) {
	var count int64
	for _, review := range f.reviews {
		if review.CreatorID == creatorID && review.ProductID == productID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReviewRepo) UpdateReviewFields(ctx context.Context, id uint, updates map[string]any) error {
	review, ok := f.reviews[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["description"]; ok {
		review.Description = v.(string)
	}
	if v, ok := updates["grade"]; ok {
		review.Grade = v.(int)
	}
	return nil
}

func (f *fakeReviewRepo) DeleteReview(ctx context.Context, id uint) error {
	delete(f.reviews, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[uint]*dbmodel.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]*dbmodel.Order{}}
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *dbmodel.Order) error {
	f.nextID++
	order.OrderID = f.nextID
	stored := *order
	f.orders[order.OrderID] = &stored
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, id uint) (*dbmodel.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *order
	return &found, nil
}

func (f *fakeOrderRepo) ListOrders(ctx context.Context, creatorID *uuid.UUID, filter model.OrderFilter, paging model.Paging) ([]dbmodel.Order, int64, error) {
	var orders []dbmodel.Order
	for _, order := range f.orders {
		if creatorID != nil && order.CreatorID != *creatorID {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, int64(len(orders)), nil
}

func (f *fakeOrderRepo) UpdateOrder(ctx context.Context, id uint, updates map[string]any, positions []dbmodel.OrderPosition) error {
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if positions != nil {
		order.Positions = positions
	}
	if v, ok := updates["status"]; ok {
		order.Status = v.(string)
	}
	if v, ok := updates["total_amount"]; ok {
		order.TotalAmount = v.(decimal.Decimal)
	}
	return nil
}

func (f *fakeOrderRepo) DeleteOrder(ctx context.Context, id uint) error {
	delete(f.orders, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*dbmodel.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*dbmodel.User{}}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *dbmodel.User) error {
	stored := *user
	f.users[user.UserID] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*dbmodel.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *user
	return &found, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*dbmodel.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ListUsers(ctx context.Context, paging model.Paging) ([]dbmodel.User, int64, error) {
	var users []dbmodel.User
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, int64(len(users)), nil
}
