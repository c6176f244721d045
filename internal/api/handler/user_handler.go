package handler

import (
	"net/http"

	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{
		userService: userService,
	}
}

func convertUserModelToDTO(model model.UserModel) dto.UserDTO {
	return dto.UserDTO{
		ID:        model.ID.String(),
		Email:     model.Email,
		Name:      model.Name,
		IsAdmin:   model.IsAdmin,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
	}
}

// @Summary get user profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError{data=string} "not found"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /profile/{id} [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	user, err := h.userService.GetProfile(r.Context(), actor, id)
	if err != nil {
		handleError(w, err)
		return
	}

	api.SuccessJSON(w, convertUserModelToDTO(*user), nil)
}

// @Summary list all user profiles
// @Tags profiles
// @Accept json
// @Produce json
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} api.Response{data=dto.ListProfilesResponse} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Security     ApiKeyAuth
// @Router /all-profiles [get]
func (h *UserHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleError(w, err)
		return
	}

	users, total, err := h.userService.ListProfiles(r.Context(), actor, dto.ParsePaging(r.URL.Query()))
	if err != nil {
		handleError(w, err)
		return
	}

	items := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, convertUserModelToDTO(user))
	}
	api.SuccessJSON(w, dto.ListProfilesResponse{Total: total, Items: items}, nil)
}
