package repository

import "github.com/tu-usuario/medimarket-api/internal/domain/entity"

// UserRepository puerto de persistencia para cuentas (todos los roles).
type UserRepository interface {
	// Create persiste la cuenta; devuelve domain.ErrUsernameTaken en 23505.
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByIDAndRole(id int64, role string) (*entity.User, error)
	// ExistsByRole indica si hay al menos una cuenta con ese rol.
	ExistsByRole(role string) (bool, error)
	ListByRole(role string) ([]*entity.User, error)
	Update(user *entity.User) error
	UpdateStatus(id int64, status string) error
	// DeleteByRole borra solo si id y rol coinciden; devuelve filas afectadas.
	DeleteByRole(id int64, role string) (int64, error)
}
