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

type ICollectionService interface {
	// 集合只維護與商品的關聯, 不變更商品本身
	CreateCollection(ctx context.Context, actor *model.Actor, arg model.CreateCollectionModel) (*model.CollectionModel, error)
	GetCollection(ctx context.Context, actor *model.Actor, id uint) (*model.CollectionModel, error)
	ListCollections(ctx context.Context, actor *model.Actor, paging model.Paging) ([]model.CollectionModel, int64, error)
	UpdateCollection(ctx context.Context, actor *model.Actor, id uint, arg model.UpdateCollectionModel) (*model.CollectionModel, error)
	DeleteCollection(ctx context.Context, actor *model.Actor, id uint) error
}

type CollectionService struct {
	collectionRepo db.ICollectionRepo
	productRepo    db.IProductRepo
	policy         IPolicyService
}

func NewCollectionService(collectionRepo db.ICollectionRepo, productRepo db.IProductRepo, policy IPolicyService) ICollectionService {
	if collectionRepo == nil || productRepo == nil || policy == nil {
		panic("collection service missing required dependency")
	}
	return &CollectionService{
		collectionRepo: collectionRepo,
		productRepo:    productRepo,
		policy:         policy,
	}
}

func convertCollectionRepoToModel(c *dbmodel.Collection) *model.CollectionModel {
	products := make([]model.ProductModel, 0, len(c.Products))
	for i := range c.Products {
		products = append(products, *convertProductRepoToModel(&c.Products[i]))
	}
	return &model.CollectionModel{
		ID:          c.CollectionID,
		Title:       c.Title,
		Description: c.Description,
		Products:    products,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// resolveCollectionProducts 確認每個商品都存在, 回傳join用的stub
func (c *CollectionService) resolveCollectionProducts(ctx context.Context, productIDs []uint) ([]dbmodel.Product, error) {
	products := make([]dbmodel.Product, 0, len(productIDs))
	seen := map[uint]bool{}
	for _, productID := range productIDs {
		if seen[productID] {
			continue
		}
		seen[productID] = true

		if _, err := c.productRepo.GetProductByID(ctx, productID); err != nil {
			if db.IsNotFound(err) {
				return nil, er.New(er.BadRequestCode, "product does not exist")
			}
			return nil, er.New(er.InternalErrorCode, err.Error())
		}
		products = append(products, dbmodel.Product{ProductID: productID})
	}
	return products, nil
}

func (c *CollectionService) CreateCollection(ctx context.Context, actor *model.Actor, arg model.CreateCollectionModel) (*model.CollectionModel, error) {
	if err := c.policy.Authorize(actor, constants.ResourceCollection, constants.ActionCreate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(arg.Title) == "" {
		return nil, er.New(er.BadRequestCode, "title is required")
	}

	products, err := c.resolveCollectionProducts(ctx, arg.ProductIDs)
	if err != nil {
		return nil, err
	}

	collection := dbmodel.Collection{
		Title:       arg.Title,
		Description: arg.Description,
		Products:    products,
	}
	if err := c.collectionRepo.CreateCollection(ctx, &collection); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	created, err := c.collectionRepo.GetCollectionByID(ctx, collection.CollectionID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return convertCollectionRepoToModel(created), nil
}

func (c *CollectionService) GetCollection(ctx context.Context, actor *model.Actor, id uint) (*model.CollectionModel, error) {
	if err := c.policy.Authorize(actor, constants.ResourceCollection, constants.ActionRead); err != nil {
		return nil, err
	}

	collection, err := c.collectionRepo.GetCollectionByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrCollectionNotFound
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertCollectionRepoToModel(collection), nil
}

func (c *CollectionService) ListCollections(ctx context.Context, actor *model.Actor, paging model.Paging) ([]model.CollectionModel, int64, error) {
	if err := c.policy.Authorize(actor, constants.ResourceCollection, constants.ActionRead); err != nil {
		return nil, 0, err
	}

	collections, total, err := c.collectionRepo.ListCollections(ctx, paging.Normalize())
	if err != nil {
		return nil, 0, er.New(er.InternalErrorCode, err.Error())
	}

	collectionModels := make([]model.CollectionModel, 0, len(collections))
	for i := range collections {
		collectionModels = append(collectionModels, *convertCollectionRepoToModel(&collections[i]))
	}
	return collectionModels, total, nil
}

func (c *CollectionService) UpdateCollection(ctx context.Context, actor *model.Actor, id uint, arg model.UpdateCollectionModel) (*model.CollectionModel, error) {
	if err := c.policy.Authorize(actor, constants.ResourceCollection, constants.ActionUpdate); err != nil {
		return nil, err
	}

	if _, err := c.collectionRepo.GetCollectionByID(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return nil, ErrCollectionNotFound
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	updates := map[string]any{}
	if arg.Title != nil {
		if strings.TrimSpace(*arg.Title) == "" {
			return nil, er.New(er.BadRequestCode, "title is required")
		}
		updates["title"] = *arg.Title
	}
	if arg.Description != nil {
		updates["description"] = *arg.Description
	}

	var products []dbmodel.Product
	if arg.ProductIDs != nil {
		var err error
		products, err = c.resolveCollectionProducts(ctx, arg.ProductIDs)
		if err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 || products != nil {
		if err := c.collectionRepo.UpdateCollection(ctx, id, updates, products); err != nil {
			return nil, er.New(er.InternalErrorCode, err.Error())
		}
	}

	updated, err := c.collectionRepo.GetCollectionByID(ctx, id)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return convertCollectionRepoToModel(updated), nil
}

func (c *CollectionService) DeleteCollection(ctx context.Context, actor *model.Actor, id uint) error {
	if err := c.policy.Authorize(actor, constants.ResourceCollection, constants.ActionDelete); err != nil {
		return err
	}

	if _, err := c.collectionRepo.GetCollectionByID(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return ErrCollectionNotFound
		}
		return er.New(er.InternalErrorCode, err.Error())
	}

	if err := c.collectionRepo.DeleteCollection(ctx, id); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}
