package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

// resolveActor 從token payload還原actor, 沒有payload就是匿名
// token有payload但使用者不存在或已停用會回錯誤
func resolveActor(r *http.Request, userService service.IUserService) (*model.Actor, error) {
	payload := util.GetTokenPayloadFromContext[uuid.UUID](r.Context())
	if payload == nil {
		return nil, nil
	}
	return userService.ResolveActor(r.Context(), payload.UserId)
}

// handleError 服務層錯誤與http狀態碼的對應
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrReviewNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrCollectionNotFound),
		errors.Is(err, service.ErrUserNotFound):
		api.ErrorJSON(w, http.StatusNotFound, err, "resource not found")
	default:
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
	}
}

func parseIDParam(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, er.New(er.BadRequestCode, "invalid id")
	}
	return uint(id), nil
}
