package service

import (
	"context"
	"strings"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/shopspring/decimal"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	dbmodel "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

const maxProductTitleLength = 50

type IProductService interface {
	// 錯誤:
	//   - er.UnauthorizedCode 403: 非admin
	//   - er.BadRequestCode 400: 無效的參數
	CreateProduct(ctx context.Context, actor *model.Actor, arg model.CreateProductModel) (*model.ProductModel, error)
	GetProduct(ctx context.Context, actor *model.Actor, id uint) (*model.ProductModel, error)
	ListProducts(ctx context.Context, actor *model.Actor, filter model.ProductFilter, paging model.Paging) ([]model.ProductModel, int64, error)
	UpdateProduct(ctx context.Context, actor *model.Actor, id uint, arg model.UpdateProductModel) (*model.ProductModel, error)
	DeleteProduct(ctx context.Context, actor *model.Actor, id uint) error
}

type ProductService struct {
	productRepo db.IProductRepo
	policy      IPolicyService
}

func NewProductService(productRepo db.IProductRepo, policy IPolicyService) IProductService {
	if productRepo == nil || policy == nil {
		panic("product service missing required dependency")
	}
	return &ProductService{
		productRepo: productRepo,
		policy:      policy,
	}
}

func convertProductRepoToModel(p *dbmodel.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          p.ProductID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func validateProductTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return er.New(er.BadRequestCode, "title is required")
	}
	if len([]rune(title)) > maxProductTitleLength {
		return er.New(er.BadRequestCode, "title must be at most 50 characters")
	}
	return nil
}

func validateProductPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return er.New(er.BadRequestCode, "price must not be negative")
	}
	return nil
}

func (p *ProductService) CreateProduct(ctx context.Context, actor *model.Actor, arg model.CreateProductModel) (*model.ProductModel, error) {
	if err := p.policy.Authorize(actor, constants.ResourceProduct, constants.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateProductTitle(arg.Title); err != nil {
		return nil, err
	}
	if err := validateProductPrice(arg.Price); err != nil {
		return nil, err
	}

	product := dbmodel.Product{
		Title:       arg.Title,
		Description: arg.Description,
		Price:       arg.Price,
	}
	if err := p.productRepo.CreateProduct(ctx, &product); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertProductRepoToModel(&product), nil
}

func (p *ProductService) GetProduct(ctx context.Context, actor *model.Actor, id uint) (*model.ProductModel, error) {
	if err := p.policy.Authorize(actor, constants.ResourceProduct, constants.ActionRead); err != nil {
		return nil, err
	}

	product, err := p.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertProductRepoToModel(product), nil
}

func (p *ProductService) ListProducts(ctx context.Context, actor *model.Actor, filter model.ProductFilter, paging model.Paging) ([]model.ProductModel, int64, error) {
	if err := p.policy.Authorize(actor, constants.ResourceProduct, constants.ActionRead); err != nil {
		return nil, 0, err
	}

	products, total, err := p.productRepo.ListProducts(ctx, filter, paging.Normalize())
	if err != nil {
		return nil, 0, er.New(er.InternalErrorCode, err.Error())
	}

	productModels := make([]model.ProductModel, 0, len(products))
	for i := range products {
		productModels = append(productModels, *convertProductRepoToModel(&products[i]))
	}
	return productModels, total, nil
}

func (p *ProductService) UpdateProduct(ctx context.Context, actor *model.Actor, id uint, arg model.UpdateProductModel) (*model.ProductModel, error) {
	if err := p.policy.Authorize(actor, constants.ResourceProduct, constants.ActionUpdate); err != nil {
		return nil, err
	}

	if _, err := p.productRepo.GetProductByID(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	// 明確列出可變更欄位, 不做動態欄位複製
	updates := map[string]any{}
	if arg.Title != nil {
		if err := validateProductTitle(*arg.Title); err != nil {
			return nil, err
		}
		updates["title"] = *arg.Title
	}
	if arg.Description != nil {
		updates["description"] = *arg.Description
	}
	if arg.Price != nil {
		if err := validateProductPrice(*arg.Price); err != nil {
			return nil, err
		}
		updates["price"] = *arg.Price
	}

	if len(updates) > 0 {
		if err := p.productRepo.UpdateProductFields(ctx, id, updates); err != nil {
			return nil, er.New(er.InternalErrorCode, err.Error())
		}
	}

	product, err := p.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return convertProductRepoToModel(product), nil
}

func (p *ProductService) DeleteProduct(ctx context.Context, actor *model.Actor, id uint) error {
	if err := p.policy.Authorize(actor, constants.ResourceProduct, constants.ActionDelete); err != nil {
		return err
	}

	if _, err := p.productRepo.GetProductByID(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return ErrProductNotFound
		}
		return er.New(er.InternalErrorCode, err.Error())
	}

	if err := p.productRepo.DeleteProduct(ctx, id); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}
