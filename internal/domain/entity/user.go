package entity

import "time"

// Roles del sistema. Un único super_admin; admins creados por el super_admin;
// vendors creados por super_admin o admin.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleVendor     = "vendor"
)

// Estados de cuenta. Binario: Active ⇄ Blocked.
const (
	StatusActive  = "Active"
	StatusBlocked = "Blocked"
)

// User representa una cuenta del panel administrativo (cualquier rol).
// Username es único a nivel global, sin importar el rol.
type User struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	Role         string // super_admin | admin | vendor
	CreatedBy    string // rol de la cuenta que la creó
	ActiveStatus string // Active | Blocked
	CreatedAt    time.Time
}

// ToggledStatus devuelve el estado opuesto al actual (Active ⇄ Blocked).
func ToggledStatus(current string) string {
	if current == StatusActive {
		return StatusBlocked
	}
	return StatusActive
}
