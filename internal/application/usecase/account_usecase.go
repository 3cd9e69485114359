package usecase

import (
	"context"

	"github.com/tu-usuario/medimarket-api/internal/application/dto"
	"github.com/tu-usuario/medimarket-api/internal/domain"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
	"github.com/tu-usuario/medimarket-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// TxRunner ejecuta fn con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner; la interfaz evita el import circular.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		profiles repository.VendorProfileRepository,
	) error) error
}

// AccountUseCase ciclo de vida de cuentas admin y vendor: listar, obtener,
// actualizar, bloquear/activar y borrar.
type AccountUseCase struct {
	userRepo repository.UserRepository
	tx       TxRunner
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(userRepo repository.UserRepository, tx TxRunner) *AccountUseCase {
	return &AccountUseCase{userRepo: userRepo, tx: tx}
}

// ListByRole lista cuentas de un rol proyectando fuera el hash.
func (uc *AccountUseCase) ListByRole(role string) ([]dto.AccountResponse, error) {
	list, err := uc.userRepo.ListByRole(role)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toAccountResponse(u))
	}
	return items, nil
}

// GetByRole obtiene una cuenta por id solo si el rol coincide.
func (uc *AccountUseCase) GetByRole(id int64, role string) (*dto.AccountResponse, error) {
	user, err := uc.userRepo.GetByIDAndRole(id, role)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	out := toAccountResponse(user)
	return &out, nil
}

// Update actualiza nombre/username/password de una cuenta. Password vacío
// conserva el hash almacenado.
func (uc *AccountUseCase) Update(id int64, in dto.UpdateAccountRequest) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	user.Name = in.Name
	user.Username = in.Username
	return uc.userRepo.Update(user)
}

// BlockAdmin fija el estado Blocked de forma incondicional (camino admin).
func (uc *AccountUseCase) BlockAdmin(id int64) error {
	return uc.userRepo.UpdateStatus(id, entity.StatusBlocked)
}

// ToggleVendorStatus alterna Active ⇄ Blocked y refleja el booleano en
// vendors_info.active dentro de una sola transacción.
func (uc *AccountUseCase) ToggleVendorStatus(ctx context.Context, id int64) (string, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrNotFound
	}
	newStatus := entity.ToggledStatus(user.ActiveStatus)
	active := 0
	if newStatus == entity.StatusActive {
		active = 1
	}
	err = uc.tx.Run(ctx, func(users repository.UserRepository, profiles repository.VendorProfileRepository) error {
		if err := users.UpdateStatus(id, newStatus); err != nil {
			return err
		}
		return profiles.UpdateActive(id, active)
	})
	if err != nil {
		return "", err
	}
	return newStatus, nil
}

// DeleteByRole borra la cuenta solo si id y rol coinciden.
func (uc *AccountUseCase) DeleteByRole(id int64, role string) error {
	affected, err := uc.userRepo.DeleteByRole(id, role)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toAccountResponse(u *entity.User) dto.AccountResponse {
	return dto.AccountResponse{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Role:         u.Role,
		ActiveStatus: u.ActiveStatus,
	}
}
