package model

import (
	"github.com/google/uuid"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
)

// Actor 當前請求的操作者，nil表示匿名請求
// 明確當參數傳遞，不從全域狀態讀取
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

func (a *Actor) Role() constants.Role {
	switch {
	case a == nil:
		return constants.RoleAnonymous
	case a.IsAdmin:
		return constants.RoleAdmin
	default:
		return constants.RoleUser
	}
}
