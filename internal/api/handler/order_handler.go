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

type OrderHandler struct {
	orderService service.IOrderService
	userService  service.IUserService
}

func NewOrderHandler(orderService service.IOrderService, userService service.IUserService) *OrderHandler {
	if orderService == nil || userService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
		userService:  userService,
	}
}

func convertOrderPositionsToDTO(positions []model.OrderPositionModel) []dto.OrderPositionDTO {
	positionDTOs := make([]dto.OrderPositionDTO, 0, len(positions))
	for _, position := range positions {
		positionDTOs = append(positionDTOs, dto.OrderPositionDTO{
			ProductID: position.ProductID,
			Quantity:  position.Quantity,
		})
	}
	return positionDTOs
}

func convertOrderPositionsToModel(positionDTOs []dto.OrderPositionDTO) []model.OrderPositionModel {
	if positionDTOs == nil {
		return nil
	}
	positions := make([]model.OrderPositionModel, 0, len(positionDTOs))
	for _, positionDTO := range positionDTOs {
		positions = append(positions, model.OrderPositionModel{
			ProductID: positionDTO.ProductID,
			Quantity:  positionDTO.Quantity,
		})
	}
	return positions
}

func convertOrderModelToDTO(model model.OrderModel) dto.OrderDTO {
	return dto.OrderDTO{
		ID:          model.ID,
		CreatorID:   model.CreatorID.String(),
		Status:      string(model.Status),
		TotalAmount: model.TotalAmount,
		Positions:   convertOrderPositionsToDTO(model.Positions),
		Quantity:    model.Quantity,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// @Summary create order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderDTO true "order positions"
// @Success 201 {object} api.Response{data=dto.OrderDTO} "created"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	// createDTO.Status在這裡被丟棄, 新訂單一律從NEW開始
	order, err := h.orderService.CreateOrder(r.Context(), actor, model.CreateOrderModel{
		Positions: convertOrderPositionsToModel(createDTO.Positions),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	api.SuccessJSON(w, convertOrderModelToDTO(*order), nil)
}

// @Summary get order by id
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
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

	order, err := h.orderService.GetOrder(r.Context(), actor, id)
	if err != nil {
		handleError(w, err)
		return
	}

	api.SuccessJSON(w, convertOrderModelToDTO(*order), nil)
}

// @Summary list orders
// @Tags orders
// @Accept json
// @Produce json
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Param status query string false "order status"
// @Param total_min query string false "minimum total amount"
// @Param total_max query string false "maximum total amount"
// @Param created_after query string false "created at lower bound"
// @Param created_before query string false "created at upper bound"
// @Param updated_after query string false "updated at lower bound"
// @Param updated_before query string false "updated at upper bound"
// @Param products query string false "product title contains"
// @Success 200 {object} api.Response{data=dto.ListOrdersResponse} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	q := r.URL.Query()
	orders, total, err := h.orderService.ListOrders(r.Context(), actor, dto.ParseOrderFilter(q), dto.ParsePaging(q))
	if err != nil {
		handleError(w, err)
		return
	}

	items := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		items = append(items, convertOrderModelToDTO(order))
	}
	api.SuccessJSON(w, dto.ListOrdersResponse{Total: total, Items: items}, nil)
}

// @Summary update order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param order body dto.UpdateOrderDTO true "fields to update"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /orders/{id} [patch]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var updateDTO dto.UpdateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	var status *model.OrderStatus
	if updateDTO.Status != nil {
		s := model.OrderStatus(*updateDTO.Status)
		status = &s
	}

	order, err := h.orderService.UpdateOrder(r.Context(), actor, id, model.UpdateOrderModel{
		Status:    status,
		Positions: convertOrderPositionsToModel(updateDTO.Positions),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	api.SuccessJSON(w, convertOrderModelToDTO(*order), nil)
}

// @Summary delete order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Success 204 "no content"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
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

	if err := h.orderService.DeleteOrder(r.Context(), actor, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
