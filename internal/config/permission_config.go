package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Permission struct {
	ID       int32  `yaml:"id"`
	Name     string `yaml:"name"`
	Resource string `yaml:"resource"`
	Actions  string `yaml:"actions"`
}

type RolePermission struct {
	Name        string  `yaml:"name"`
	Permissions []int32 `yaml:"permissions"`
}

type PermissionConfig struct {
	Permissions    []Permission     `yaml:"permissions"`
	RolePermission []RolePermission `yaml:"role_permissions"`
}

// DefaultPermissionConfig 內建授權表, 與docs/permission.yaml一致
// config檔不存在時的fallback, 測試也用這份
func DefaultPermissionConfig() *PermissionConfig {
	resources := []string{"products", "product-reviews", "orders", "product-collections"}
	actions := []string{"read", "create", "update", "delete"}

	cf := &PermissionConfig{}
	id := int32(0)
	for _, resource := range resources {
		for _, action := range actions {
			id++
			cf.Permissions = append(cf.Permissions, Permission{
				ID:       id,
				Name:     resource + "-" + action,
				Resource: resource,
				Actions:  action,
			})
		}
	}
	profileRead := id + 1
	cf.Permissions = append(cf.Permissions, Permission{
		ID:       profileRead,
		Name:     "profiles-read",
		Resource: "profiles",
		Actions:  "read",
	})

	var all []int32
	for i := int32(1); i <= profileRead; i++ {
		all = append(all, i)
	}

	cf.RolePermission = []RolePermission{
		{
			// 未登入只能讀目錄與評論
			Name:        "anonymous",
			Permissions: []int32{1, 5, 13},
		},
		{
			// 登入用戶: 目錄唯讀, 評論與訂單完整操作 (實例層級另外檢查ownership)
			Name:        "user",
			Permissions: []int32{1, 5, 6, 7, 8, 9, 10, 11, 12, 13, profileRead},
		},
		{
			Name:        "admin",
			Permissions: all,
		},
	}

	return cf
}

// yaml path : docs/permission.yaml
func LoadPermissionConfig(path string) (*PermissionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &PermissionConfig{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
