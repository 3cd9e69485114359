package dto

// RegisterSuperAdminRequest entrada del registro único de super_admin.
type RegisterSuperAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest entrada para login de cualquier rol.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PublicUser proyección pública de la cuenta (nunca incluye el hash).
type PublicUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse salida con token JWT y usuario público.
type LoginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// AddAccountRequest entrada para crear admin o vendor (password en texto, se hashea en use case).
type AddAccountRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountRequest entrada para actualizar una cuenta. Password vacío
// conserva el hash almacenado.
type UpdateAccountRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountResponse salida de una cuenta en listados (sin password).
type AccountResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	ActiveStatus string `json:"activeStatus"`
}
