package service

import (
	"context"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	dbmodel "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type IOrderService interface {
	// 狀態固定從NEW開始, 金額由明細與商品單價計算, 不信任client傳入的值
	CreateOrder(ctx context.Context, actor *model.Actor, arg model.CreateOrderModel) (*model.OrderModel, error)
	// 超出可見範圍的訂單回傳ErrOrderNotFound, 不是403
	GetOrder(ctx context.Context, actor *model.Actor, id uint) (*model.OrderModel, error)
	ListOrders(ctx context.Context, actor *model.Actor, filter model.OrderFilter, paging model.Paging) ([]model.OrderModel, int64, error)
	UpdateOrder(ctx context.Context, actor *model.Actor, id uint, arg model.UpdateOrderModel) (*model.OrderModel, error)
	DeleteOrder(ctx context.Context, actor *model.Actor, id uint) error
}

type OrderService struct {
	orderRepo   db.IOrderRepo
	productRepo db.IProductRepo
	policy      IPolicyService
}

func NewOrderService(orderRepo db.IOrderRepo, productRepo db.IProductRepo, policy IPolicyService) IOrderService {
	if orderRepo == nil || productRepo == nil || policy == nil {
		panic("order service missing required dependency")
	}
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		policy:      policy,
	}
}

func convertOrderRepoToModel(o *dbmodel.Order) *model.OrderModel {
	positions := make([]model.OrderPositionModel, 0, len(o.Positions))
	for _, position := range o.Positions {
		positions = append(positions, model.OrderPositionModel{
			ProductID: position.ProductID,
			Quantity:  position.Quantity,
		})
	}
	return &model.OrderModel{
		ID:          o.OrderID,
		CreatorID:   o.CreatorID,
		Status:      model.OrderStatus(o.Status),
		TotalAmount: o.TotalAmount,
		Positions:   positions,
		Quantity:    len(positions),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// buildOrderPositions 驗證明細並計算訂單總額
// 商品單價以資料庫當下的值為準
func (o *OrderService) buildOrderPositions(ctx context.Context, positions []model.OrderPositionModel) ([]dbmodel.OrderPosition, decimal.Decimal, error) {
	if len(positions) == 0 {
		return nil, decimal.Zero, er.New(er.BadRequestCode, "order must contain at least one position")
	}

	total := decimal.Zero
	seen := map[uint]bool{}
	dbPositions := make([]dbmodel.OrderPosition, 0, len(positions))
	for _, position := range positions {
		if position.Quantity < 1 {
			return nil, decimal.Zero, er.New(er.BadRequestCode, "quantity must be at least 1")
		}
		if seen[position.ProductID] {
			return nil, decimal.Zero, er.New(er.BadRequestCode, "duplicate product in order positions")
		}
		seen[position.ProductID] = true

		product, err := o.productRepo.GetProductByID(ctx, position.ProductID)
		if err != nil {
			if db.IsNotFound(err) {
				return nil, decimal.Zero, er.New(er.BadRequestCode, "product does not exist")
			}
			return nil, decimal.Zero, er.New(er.InternalErrorCode, err.Error())
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(position.Quantity))))
		dbPositions = append(dbPositions, dbmodel.OrderPosition{
			ProductID: position.ProductID,
			Quantity:  position.Quantity,
		})
	}

	return dbPositions, total, nil
}

func (o *OrderService) CreateOrder(ctx context.Context, actor *model.Actor, arg model.CreateOrderModel) (*model.OrderModel, error) {
	if err := o.policy.Authorize(actor, constants.ResourceOrder, constants.ActionCreate); err != nil {
		return nil, err
	}

	positions, total, err := o.buildOrderPositions(ctx, arg.Positions)
	if err != nil {
		return nil, err
	}

	order := dbmodel.Order{
		CreatorID:   actor.ID,
		Status:      string(model.OrderStatusNew),
		TotalAmount: total,
		Positions:   positions,
	}
	if err := o.orderRepo.CreateOrder(ctx, &order); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertOrderRepoToModel(&order), nil
}

func (o *OrderService) GetOrder(ctx context.Context, actor *model.Actor, id uint) (*model.OrderModel, error) {
	if err := o.policy.Authorize(actor, constants.ResourceOrder, constants.ActionRead); err != nil {
		return nil, err
	}

	order, err := o.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	if !o.policy.CanSeeOrder(actor, order.CreatorID) {
		return nil, ErrOrderNotFound
	}

	return convertOrderRepoToModel(order), nil
}

func (o *OrderService) ListOrders(ctx context.Context, actor *model.Actor, filter model.OrderFilter, paging model.Paging) ([]model.OrderModel, int64, error) {
	if err := o.policy.Authorize(actor, constants.ResourceOrder, constants.ActionRead); err != nil {
		return nil, 0, err
	}

	// 非admin限縮到自己的訂單
	var creatorID *uuid.UUID
	if !actor.Role().IsPrivileged() {
		creatorID = &actor.ID
	}

	orders, total, err := o.orderRepo.ListOrders(ctx, creatorID, filter, paging.Normalize())
	if err != nil {
		return nil, 0, er.New(er.InternalErrorCode, err.Error())
	}

	orderModels := make([]model.OrderModel, 0, len(orders))
	for i := range orders {
		orderModels = append(orderModels, *convertOrderRepoToModel(&orders[i]))
	}
	return orderModels, total, nil
}

func (o *OrderService) UpdateOrder(ctx context.Context, actor *model.Actor, id uint, arg model.UpdateOrderModel) (*model.OrderModel, error) {
	if err := o.policy.Authorize(actor, constants.ResourceOrder, constants.ActionUpdate); err != nil {
		return nil, err
	}

	order, err := o.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	if !o.policy.CanSeeOrder(actor, order.CreatorID) {
		return nil, ErrOrderNotFound
	}

	immutable := map[string]bool{}
	for _, field := range o.policy.ImmutableFields(actor, constants.ResourceOrder) {
		immutable[field] = true
	}

	updates := map[string]any{}
	if arg.Status != nil && !immutable["status"] {
		if !model.IsValidOrderStatus(string(*arg.Status)) {
			return nil, er.New(er.BadRequestCode, "invalid order status")
		}
		updates["status"] = string(*arg.Status)
	}

	var positions []dbmodel.OrderPosition
	if arg.Positions != nil {
		var total decimal.Decimal
		positions, total, err = o.buildOrderPositions(ctx, arg.Positions)
		if err != nil {
			return nil, err
		}
		updates["total_amount"] = total
	}

	if len(updates) > 0 || positions != nil {
		if err := o.orderRepo.UpdateOrder(ctx, id, updates, positions); err != nil {
			return nil, er.New(er.InternalErrorCode, err.Error())
		}
	}

	updated, err := o.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return convertOrderRepoToModel(updated), nil
}

func (o *OrderService) DeleteOrder(ctx context.Context, actor *model.Actor, id uint) error {
	if err := o.policy.Authorize(actor, constants.ResourceOrder, constants.ActionDelete); err != nil {
		return err
	}

	order, err := o.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return ErrOrderNotFound
		}
		return er.New(er.InternalErrorCode, err.Error())
	}
	if !o.policy.CanSeeOrder(actor, order.CreatorID) {
		return ErrOrderNotFound
	}

	if err := o.orderRepo.DeleteOrder(ctx, id); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}
