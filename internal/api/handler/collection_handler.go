package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type CollectionHandler struct {
	collectionService service.ICollectionService
	userService       service.IUserService
}

func NewCollectionHandler(collectionService service.ICollectionService, userService service.IUserService) *CollectionHandler {
	if collectionService == nil || userService == nil {
		panic("collectionService cannot be nil")
	}
	return &CollectionHandler{
		collectionService: collectionService,
		userService:       userService,
	}
}

func convertCollectionModelToDTO(model model.CollectionModel) dto.CollectionDTO {
	products := make([]dto.ProductDTO, 0, len(model.Products))
	for _, product := range model.Products {
		products = append(products, convertProductModelToDTO(product))
	}
	return dto.CollectionDTO{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Products:    products,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// @Summary create product collection
// @Tags product-collections
// @Accept json
// @Produce json
// @Param collection body dto.CreateCollectionDTO true "collection"
// @Success 201 {object} api.Response{data=dto.CollectionDTO} "created"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /product-collections [post]
func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateCollectionDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	collection, err := h.collectionService.CreateCollection(r.Context(), actor, model.CreateCollectionModel{
		Title:       createDTO.Title,
		Description: createDTO.Description,
		ProductIDs:  createDTO.ProductIDs,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	api.SuccessJSON(w, convertCollectionModelToDTO(*collection), nil)
}

// @Summary get product collection by id
// @Tags product-collections
// @Accept json
// @Produce json
// @Param id path int true "collection id"
// @Success 200 {object} api.Response{data=dto.CollectionDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /product-collections/{id} [get]
func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	collection, err := h.collectionService.GetCollection(r.Context(), actor, id)
	if err != nil {
		handleError(w, err)
		return
	}

	api.SuccessJSON(w, convertCollectionModelToDTO(*collection), nil)
}

// @Summary list product collections
// @Tags product-collections
// @Accept json
// @Produce json
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} api.Response{data=dto.ListCollectionsResponse} "success"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /product-collections [get]
func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	collections, total, err := h.collectionService.ListCollections(r.Context(), actor, dto.ParsePaging(r.URL.Query()))
	if err != nil {
		handleError(w, err)
		return
	}

	items := make([]dto.CollectionDTO, 0, len(collections))
	for _, collection := range collections {
		items = append(items, convertCollectionModelToDTO(collection))
	}
	api.SuccessJSON(w, dto.ListCollectionsResponse{Total: total, Items: items}, nil)
}

// @Summary update product collection
// @Tags product-collections
// @Accept json
// @Produce json
// @Param id path int true "collection id"
// @Param collection body dto.UpdateCollectionDTO true "fields to update"
// @Success 200 {object} api.Response{data=dto.CollectionDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /product-collections/{id} [patch]
func (h *CollectionHandler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var updateDTO dto.UpdateCollectionDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	collection, err := h.collectionService.UpdateCollection(r.Context(), actor, id, model.UpdateCollectionModel{
		Title:       updateDTO.Title,
		Description: updateDTO.Description,
		ProductIDs:  updateDTO.ProductIDs,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	api.SuccessJSON(w, convertCollectionModelToDTO(*collection), nil)
}

// @Summary delete product collection
// @Tags product-collections
// @Accept json
// @Produce json
// @Param id path int true "collection id"
// @Success 204 "no content"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /product-collections/{id} [delete]
func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.collectionService.DeleteCollection(r.Context(), actor, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
