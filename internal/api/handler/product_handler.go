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

type ProductHandler struct {
	productService service.IProductService
	userService    service.IUserService
}

func NewProductHandler(productService service.IProductService, userService service.IUserService) *ProductHandler {
	if productService == nil || userService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
		userService:    userService,
	}
}

func convertProductModelToDTO(model model.ProductModel) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Price:       model.Price,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// @Summary create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductDTO true "product"
// @Success 201 {object} api.Response{data=dto.ProductDTO} "created"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /products [post]
func (p *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	actor, err := resolveActor(r, p.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	product, err := p.productService.CreateProduct(r.Context(), actor, model.CreateProductModel{
		Title:       createDTO.Title,
		Description: createDTO.Description,
		Price:       createDTO.Price,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	api.SuccessJSON(w, convertProductModelToDTO(*product), nil)
}

// @Summary get product by id
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /products/{id} [get]
func (p *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	actor, err := resolveActor(r, p.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	product, err := p.productService.GetProduct(r.Context(), actor, id)
	if err != nil {
		handleError(w, err)
		return
	}

	api.SuccessJSON(w, convertProductModelToDTO(*product), nil)
}

// @Summary list products
// @Tags products
// @Accept json
// @Produce json
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Param price_min query string false "minimum price"
// @Param price_max query string false "maximum price"
// @Param title query string false "title contains"
// @Param description query string false "description contains"
// @Success 200 {object} api.Response{data=dto.ListProductsResponse} "success"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /products [get]
func (p *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, p.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	q := r.URL.Query()
	products, total, err := p.productService.ListProducts(r.Context(), actor, dto.ParseProductFilter(q), dto.ParsePaging(q))
	if err != nil {
		handleError(w, err)
		return
	}

	items := make([]dto.ProductDTO, 0, len(products))
	for _, product := range products {
		items = append(items, convertProductModelToDTO(product))
	}
	api.SuccessJSON(w, dto.ListProductsResponse{Total: total, Items: items}, nil)
}

// @Summary update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "product id"
// @Param product body dto.UpdateProductDTO true "fields to update"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /products/{id} [patch]
func (p *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var updateDTO dto.UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	actor, err := resolveActor(r, p.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	product, err := p.productService.UpdateProduct(r.Context(), actor, id, model.UpdateProductModel{
		Title:       updateDTO.Title,
		Description: updateDTO.Description,
		Price:       updateDTO.Price,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	api.SuccessJSON(w, convertProductModelToDTO(*product), nil)
}

// @Summary delete product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "product id"
// @Success 204 "no content"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /products/{id} [delete]
func (p *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	actor, err := resolveActor(r, p.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := p.productService.DeleteProduct(r.Context(), actor, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
