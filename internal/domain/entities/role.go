package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Catalog permissions
	PermissionCatalogRead   Permission = "catalog.read"
	PermissionCatalogWrite  Permission = "catalog.write"
	PermissionCatalogImport Permission = "catalog.import"

	// Review permissions
	PermissionReviewWrite  Permission = "reviews.write"
	PermissionReviewDelete Permission = "reviews.delete"

	// Activity permissions
	PermissionActivityRead Permission = "activity.read"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionCatalogRead,
		PermissionCatalogWrite,
		PermissionCatalogImport,
		PermissionReviewWrite,
		PermissionReviewDelete,
		PermissionActivityRead,
	},
	RoleUser: {
		PermissionCatalogRead,
		PermissionReviewWrite,
	},
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
