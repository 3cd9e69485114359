package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/medimarket-api/internal/application/dto"
	"github.com/tu-usuario/medimarket-api/internal/application/usecase"
	"github.com/tu-usuario/medimarket-api/internal/domain"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
	"github.com/tu-usuario/medimarket-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  []*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{nextID: 1} }

func (f *fakeUserRepo) seed(name, username, role, status string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.MinCost)
	u := &entity.User{
		ID: f.nextID, Name: name, Username: username,
		PasswordHash: string(hash), Role: role,
		CreatedBy: entity.RoleSuperAdmin, ActiveStatus: status,
	}
	f.nextID++
	f.users = append(f.users, u)
	return u
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDAndRole(id int64, role string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id && u.Role == role {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByRole(role string) (bool, error) {
	for _, u := range f.users {
		if u.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ListByRole(role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(user *entity.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
		}
	}
	return nil
}

func (f *fakeUserRepo) UpdateStatus(id int64, status string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.ActiveStatus = status
		}
	}
	return nil
}

func (f *fakeUserRepo) DeleteByRole(id int64, role string) (int64, error) {
	for i, u := range f.users {
		if u.ID == id && u.Role == role {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeProfileRepo struct {
	profiles []*entity.VendorProfile
}

func (f *fakeProfileRepo) Create(p *entity.VendorProfile) error {
	for _, e := range f.profiles {
		if e.UserID == p.UserID {
			return domain.ErrProfileExists
		}
	}
	f.profiles = append(f.profiles, p)
	return nil
}

func (f *fakeProfileRepo) GetByUserID(userID int64) (*entity.VendorProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) ListJoined() ([]*entity.VendorProfileWithUser, error) {
	return nil, nil
}

func (f *fakeProfileRepo) Update(p *entity.VendorProfile) (int64, error) {
	for i, e := range f.profiles {
		if e.UserID == p.UserID {
			p.ID = e.ID
			f.profiles[i] = p
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeProfileRepo) UpdateActive(userID int64, active int) error {
	for _, p := range f.profiles {
		if p.UserID == userID {
			p.Active = active
		}
	}
	return nil
}

// fakeTxRunner ejecuta fn con los mismos fakes, sin transacción real.
type fakeTxRunner struct {
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	runs     int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	users repository.UserRepository,
	profiles repository.VendorProfileRepository,
) error) error {
	f.runs++
	return fn(f.users, f.profiles)
}

// ──────────────────────────────────────────────────────────────────────────────
// AccountUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestListByRole_ProyectaSinHash(t *testing.T) {
	users := newFakeUserRepo()
	users.seed("Ana", "ana", entity.RoleAdmin, entity.StatusActive)
	users.seed("Farmacia Sur", "farmasur", entity.RoleVendor, entity.StatusActive)
	uc := usecase.NewAccountUseCase(users, &fakeTxRunner{users: users, profiles: &fakeProfileRepo{}})

	list, err := uc.ListByRole(entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ana", list[0].Username)
	assert.Equal(t, entity.RoleAdmin, list[0].Role)
}

func TestGetByRole_RolIncorrectoEsNotFound(t *testing.T) {
	users := newFakeUserRepo()
	admin := users.seed("Ana", "ana", entity.RoleAdmin, entity.StatusActive)
	uc := usecase.NewAccountUseCase(users, &fakeTxRunner{users: users, profiles: &fakeProfileRepo{}})

	// id válido pero rol vendor → not found
	_, err := uc.GetByRole(admin.ID, entity.RoleVendor)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.GetByRole(admin.ID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Username)
}

// Password vacío en update conserva el hash almacenado.
func TestUpdate_PasswordVacioConservaHash(t *testing.T) {
	users := newFakeUserRepo()
	u := users.seed("Ana", "ana", entity.RoleAdmin, entity.StatusActive)
	originalHash := u.PasswordHash
	uc := usecase.NewAccountUseCase(users, &fakeTxRunner{users: users, profiles: &fakeProfileRepo{}})

	err := uc.Update(u.ID, dto.UpdateAccountRequest{Name: "Ana María", Username: "anamaria"})
	require.NoError(t, err)

	updated, _ := users.GetByID(u.ID)
	assert.Equal(t, "Ana María", updated.Name)
	assert.Equal(t, "anamaria", updated.Username)
	assert.Equal(t, originalHash, updated.PasswordHash, "sin password nuevo no se re-hashea")
}

func TestUpdate_PasswordNuevoReHashea(t *testing.T) {
	users := newFakeUserRepo()
	u := users.seed("Ana", "ana", entity.RoleAdmin, entity.StatusActive)
	originalHash := u.PasswordHash
	uc := usecase.NewAccountUseCase(users, &fakeTxRunner{users: users, profiles: &fakeProfileRepo{}})

	err := uc.Update(u.ID, dto.UpdateAccountRequest{Name: "Ana", Username: "ana", Password: "nuevo123"})
	require.NoError(t, err)

	updated, _ := users.GetByID(u.ID)
	assert.NotEqual(t, originalHash, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("nuevo123")))
}

// El bloqueo de admin es unidireccional: siempre deja Blocked.
func TestBlockAdmin_SiempreBloquea(t *testing.T) {
	users := newFakeUserRepo()
	u := users.seed("Ana", "ana", entity.RoleAdmin, entity.StatusActive)
	uc := usecase.NewAccountUseCase(users, &fakeTxRunner{users: users, profiles: &fakeProfileRepo{}})

	require.NoError(t, uc.BlockAdmin(u.ID))
	assert.Equal(t, entity.StatusBlocked, u.ActiveStatus)

	// Segunda llamada no alterna: sigue Blocked.
	require.NoError(t, uc.BlockAdmin(u.ID))
	assert.Equal(t, entity.StatusBlocked, u.ActiveStatus)
}

// El toggle del vendor alterna el estado de la cuenta y refleja el booleano
// en el perfil dentro del runner transaccional.
func TestToggleVendorStatus_AlternaYReflejaEnPerfil(t *testing.T) {
	users := newFakeUserRepo()
	vendor := users.seed("Farmacia Sur", "farmasur", entity.RoleVendor, entity.StatusActive)
	profiles := &fakeProfileRepo{profiles: []*entity.VendorProfile{{ID: 1, UserID: vendor.ID, Active: 1}}}
	tx := &fakeTxRunner{users: users, profiles: profiles}
	uc := usecase.NewAccountUseCase(users, tx)

	newStatus, err := uc.ToggleVendorStatus(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusBlocked, newStatus)
	assert.Equal(t, entity.StatusBlocked, vendor.ActiveStatus)
	assert.Equal(t, 0, profiles.profiles[0].Active, "el perfil espeja el bloqueo")
	assert.Equal(t, 1, tx.runs, "el cambio corre dentro del runner transaccional")

	// Segundo toggle: vuelve a Active.
	newStatus, err = uc.ToggleVendorStatus(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, newStatus)
	assert.Equal(t, 1, profiles.profiles[0].Active)
}

func TestToggleVendorStatus_NoExiste(t *testing.T) {
	users := newFakeUserRepo()
	uc := usecase.NewAccountUseCase(users, &fakeTxRunner{users: users, profiles: &fakeProfileRepo{}})

	_, err := uc.ToggleVendorStatus(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteByRole_CeroFilasEsNotFound(t *testing.T) {
	users := newFakeUserRepo()
	admin := users.seed("Ana", "ana", entity.RoleAdmin, entity.StatusActive)
	uc := usecase.NewAccountUseCase(users, &fakeTxRunner{users: users, profiles: &fakeProfileRepo{}})

	// Borrar con rol que no coincide no toca nada.
	err := uc.DeleteByRole(admin.ID, entity.RoleVendor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, users.users, 1)

	require.NoError(t, uc.DeleteByRole(admin.ID, entity.RoleAdmin))
	assert.Empty(t, users.users)
}
