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

type ReviewHandler struct {
	reviewService service.IReviewService
	userService   service.IUserService
}

func NewReviewHandler(reviewService service.IReviewService, userService service.IUserService) *ReviewHandler {
	if reviewService == nil || userService == nil {
		panic("reviewService cannot be nil")
	}
	return &ReviewHandler{
		reviewService: reviewService,
		userService:   userService,
	}
}

func convertReviewModelToDTO(model model.ReviewModel) dto.ReviewDTO {
	return dto.ReviewDTO{
		ID:          model.ID,
		Creator:     convertUserModelToDTO(model.Creator),
		ProductID:   model.ProductID,
		Description: model.Description,
		Grade:       model.Grade,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// @Summary create product review
// @Tags product-reviews
// @Accept json
// @Produce json
// @Param review body dto.CreateReviewDTO true "review"
// @Success 201 {object} api.Response{data=dto.ReviewDTO} "created"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /product-reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), actor, model.CreateReviewModel{
		ProductID:   createDTO.ProductID,
		Description: createDTO.Description,
		Grade:       createDTO.Grade,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	api.SuccessJSON(w, convertReviewModelToDTO(*review), nil)
}

// @Summary get product review by id
// @Tags product-reviews
// @Accept json
// @Produce json
// @Param id path int true "review id"
// @Success 200 {object} api.Response{data=dto.ReviewDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /product-reviews/{id} [get]
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
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

	review, err := h.reviewService.GetReview(r.Context(), actor, id)
	if err != nil {
		handleError(w, err)
		return
	}

	api.SuccessJSON(w, convertReviewModelToDTO(*review), nil)
}

// @Summary list product reviews
// @Tags product-reviews
// @Accept json
// @Produce json
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Param creator query string false "creator user id"
// @Param product query int false "product id"
// @Param created_after query string false "created at lower bound"
// @Param created_before query string false "created at upper bound"
// @Success 200 {object} api.Response{data=dto.ListReviewsResponse} "success"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /product-reviews [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	q := r.URL.Query()
	reviews, total, err := h.reviewService.ListReviews(r.Context(), actor, dto.ParseReviewFilter(q), dto.ParsePaging(q))
	if err != nil {
		handleError(w, err)
		return
	}

	items := make([]dto.ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, convertReviewModelToDTO(review))
	}
	api.SuccessJSON(w, dto.ListReviewsResponse{Total: total, Items: items}, nil)
}

// @Summary update product review
// @Tags product-reviews
// @Accept json
// @Produce json
// @Param id path int true "review id"
// @Param review body dto.UpdateReviewDTO true "fields to update"
// @Success 200 {object} api.Response{data=dto.ReviewDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /product-reviews/{id} [patch]
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var updateDTO dto.UpdateReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	review, err := h.reviewService.UpdateReview(r.Context(), actor, id, model.UpdateReviewModel{
		Description: updateDTO.Description,
		Grade:       updateDTO.Grade,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	api.SuccessJSON(w, convertReviewModelToDTO(*review), nil)
}

// @Summary delete product review
// @Tags product-reviews
// @Accept json
// @Produce json
// @Param id path int true "review id"
// @Success 204 "no content"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /product-reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
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

	if err := h.reviewService.DeleteReview(r.Context(), actor, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
