package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrSuperAdminExists = errors.New("ya existe un super_admin")
	ErrUsernameTaken    = errors.New("el username ya está registrado")
	ErrProfileExists    = errors.New("la cuenta vendor ya tiene perfil")
)
