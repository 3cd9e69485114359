package repository

import "github.com/tu-usuario/medimarket-api/internal/domain/entity"

// VendorProfileRepository puerto de persistencia para vendors_info.
type VendorProfileRepository interface {
	// Create persiste el perfil; devuelve domain.ErrProfileExists en 23505
	// sobre el índice único de user_id.
	Create(profile *entity.VendorProfile) error
	GetByUserID(userID int64) (*entity.VendorProfile, error)
	// ListJoined devuelve cada perfil unido con id/nombre/username/rol de su cuenta.
	ListJoined() ([]*entity.VendorProfileWithUser, error)
	// Update actualiza la fila completa por user_id; devuelve filas afectadas.
	Update(profile *entity.VendorProfile) (int64, error)
	UpdateActive(userID int64, active int) error
}
