package service

import (
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type IPolicyService interface {
	// Authorize 角色層級的檢查 (actor, action, resource) -> allow/deny
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 匿名請求, 一般用戶登入後可被允許
	//   - er.UnauthorizedCode 403: 已登入但角色沒有權限
	Authorize(actor *model.Actor, resource constants.Resource, action constants.Action) error
	// AuthorizeOwner 實例層級的檢查, 只有資源的creator可以變更
	AuthorizeOwner(actor *model.Actor, resource constants.Resource, action constants.Action, ownerID uuid.UUID) error
	// CanSeeOrder 訂單可見範圍: admin看全部, 其他人只看自己的
	// 超出範圍的訂單對外表現為不存在, 不是沒有權限
	CanSeeOrder(actor *model.Actor, creatorID uuid.UUID) bool
	// ImmutableFields 回傳該actor對該資源update時不可變更的欄位
	ImmutableFields(actor *model.Actor, resource constants.Resource) []string
}

// PolicyService 純函數的存取策略判定, 不產生任何副作用
// 角色對資源/動作的授權表由permission config載入
type PolicyService struct {
	grants map[constants.Role]map[constants.Resource]map[constants.Action]bool
}

func NewPolicyService(cf *config.PermissionConfig) IPolicyService {
	if cf == nil {
		cf = config.DefaultPermissionConfig()
	}

	permissions := map[int32]config.Permission{}
	for _, permission := range cf.Permissions {
		permissions[permission.ID] = permission
	}

	grants := map[constants.Role]map[constants.Resource]map[constants.Action]bool{}
	for _, rolePermission := range cf.RolePermission {
		role := constants.Role(rolePermission.Name)
		if _, ok := grants[role]; !ok {
			grants[role] = map[constants.Resource]map[constants.Action]bool{}
		}
		for _, permissionID := range rolePermission.Permissions {
			permission, ok := permissions[permissionID]
			if !ok {
				continue
			}
			resource := constants.Resource(permission.Resource)
			if _, ok := grants[role][resource]; !ok {
				grants[role][resource] = map[constants.Action]bool{}
			}
			grants[role][resource][constants.Action(permission.Actions)] = true
		}
	}

	return &PolicyService{grants: grants}
}

func (p *PolicyService) isGranted(role constants.Role, resource constants.Resource, action constants.Action) bool {
	return p.grants[role][resource][action]
}

func (p *PolicyService) Authorize(actor *model.Actor, resource constants.Resource, action constants.Action) error {
	if p.isGranted(actor.Role(), resource, action) {
		return nil
	}

	// 匿名被拒但一般登入用戶可行, 回401引導登入
	// admin限定的動作對匿名一樣回403
	if actor == nil && p.isGranted(constants.RoleUser, resource, action) {
		return er.New(er.UnauthenticatedCode, "authentication required")
	}

	return er.New(er.UnauthorizedCode, "administrator privileges required")
}

func (p *PolicyService) AuthorizeOwner(actor *model.Actor, resource constants.Resource, action constants.Action, ownerID uuid.UUID) error {
	if err := p.Authorize(actor, resource, action); err != nil {
		return err
	}

	if actor.ID != ownerID {
		return er.New(er.UnauthorizedCode, "only the creator can modify this resource")
	}

	return nil
}

func (p *PolicyService) CanSeeOrder(actor *model.Actor, creatorID uuid.UUID) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin || actor.ID == creatorID
}

func (p *PolicyService) ImmutableFields(actor *model.Actor, resource constants.Resource) []string {
	// 訂單狀態只有admin可以變更, 其他人帶入會被靜默忽略
	if resource == constants.ResourceOrder && !actor.Role().IsPrivileged() {
		return []string{"status"}
	}
	return nil
}
