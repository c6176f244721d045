package service

import (
	"context"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	dbmodel "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type IUserService interface {
	// ResolveActor 由token payload的user id還原actor
	// 使用者不存在或已停用一律視為未認證
	ResolveActor(ctx context.Context, userID uuid.UUID) (*model.Actor, error)
	// GetProfile 非admin只能讀自己的profile
	GetProfile(ctx context.Context, actor *model.Actor, id uuid.UUID) (*model.UserModel, error)
	// ListProfiles admin限定
	ListProfiles(ctx context.Context, actor *model.Actor, paging model.Paging) ([]model.UserModel, int64, error)
}

type UserService struct {
	userRepo db.IUserRepo
	policy   IPolicyService
}

func NewUserService(userRepo db.IUserRepo, policy IPolicyService) IUserService {
	if userRepo == nil || policy == nil {
		panic("user service missing required dependency")
	}
	return &UserService{
		userRepo: userRepo,
		policy:   policy,
	}
}

func convertUserRepoToModel(u *dbmodel.User) *model.UserModel {
	return &model.UserModel{
		ID:        u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		IsAdmin:   u.IsAdmin,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func (u *UserService) ResolveActor(ctx context.Context, userID uuid.UUID) (*model.Actor, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, er.New(er.UnauthenticatedCode, "unknown user")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	if !user.IsActive {
		return nil, er.New(er.UnauthenticatedCode, "user is deactivated")
	}

	return &model.Actor{
		ID:      user.UserID,
		IsAdmin: user.IsAdmin,
	}, nil
}

func (u *UserService) GetProfile(ctx context.Context, actor *model.Actor, id uuid.UUID) (*model.UserModel, error) {
	if err := u.policy.Authorize(actor, constants.ResourceProfile, constants.ActionRead); err != nil {
		return nil, err
	}
	if !actor.Role().IsPrivileged() && actor.ID != id {
		return nil, er.New(er.UnauthorizedCode, "cannot access another user's profile")
	}

	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertUserRepoToModel(user), nil
}

func (u *UserService) ListProfiles(ctx context.Context, actor *model.Actor, paging model.Paging) ([]model.UserModel, int64, error) {
	if err := u.policy.Authorize(actor, constants.ResourceProfile, constants.ActionRead); err != nil {
		return nil, 0, err
	}
	if !actor.Role().IsPrivileged() {
		return nil, 0, er.New(er.UnauthorizedCode, "administrator privileges required")
	}

	users, total, err := u.userRepo.ListUsers(ctx, paging.Normalize())
	if err != nil {
		return nil, 0, er.New(er.InternalErrorCode, err.Error())
	}

	userModels := make([]model.UserModel, 0, len(users))
	for i := range users {
		userModels = append(userModels, *convertUserRepoToModel(&users[i]))
	}
	return userModels, total, nil
}
