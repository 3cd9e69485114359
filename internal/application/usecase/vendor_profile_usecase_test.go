package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/medimarket-api/internal/application/dto"
	"github.com/tu-usuario/medimarket-api/internal/application/usecase"
	"github.com/tu-usuario/medimarket-api/internal/domain"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// VendorProfileUseCase
// ──────────────────────────────────────────────────────────────────────────────

// El perfil se crea para una cuenta vendor existente y copia su nombre
// actual en ref_name.
func TestProfileCreate_CopiaRefName(t *testing.T) {
	users := newFakeUserRepo()
	vendor := users.seed("Farmacia Sur", "farmasur", entity.RoleVendor, entity.StatusActive)
	profiles := &fakeProfileRepo{}
	uc := usecase.NewVendorProfileUseCase(users, profiles)

	err := uc.Create(dto.VendorProfileRequest{
		UserID:         vendor.ID,
		Category:       "farmacia",
		DrugLicense:    "DL-2024-001",
		GSTIN:          "22AAAAA0000A1Z5",
		OfferStartDate: "2026-01-01",
		OfferEndDate:   "2026-02-01",
	})
	require.NoError(t, err)

	require.Len(t, profiles.profiles, 1)
	p := profiles.profiles[0]
	assert.Equal(t, "Farmacia Sur", p.RefName, "ref_name se copia del nombre de la cuenta")
	assert.Equal(t, 1, p.Active, "active por defecto es 1")
	require.NotNil(t, p.OfferStartDate)
	assert.Equal(t, "2026-01-01", p.OfferStartDate.Format("2006-01-02"))
}

// Solo cuentas con rol vendor pueden tener perfil.
func TestProfileCreate_CuentaNoVendor(t *testing.T) {
	users := newFakeUserRepo()
	admin := users.seed("Ana", "ana", entity.RoleAdmin, entity.StatusActive)
	uc := usecase.NewVendorProfileUseCase(users, &fakeProfileRepo{})

	err := uc.Create(dto.VendorProfileRequest{UserID: admin.ID})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = uc.Create(dto.VendorProfileRequest{UserID: 999})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Una cuenta vendor admite un solo perfil.
func TestProfileCreate_PerfilDuplicado(t *testing.T) {
	users := newFakeUserRepo()
	vendor := users.seed("Farmacia Sur", "farmasur", entity.RoleVendor, entity.StatusActive)
	profiles := &fakeProfileRepo{}
	uc := usecase.NewVendorProfileUseCase(users, profiles)

	require.NoError(t, uc.Create(dto.VendorProfileRequest{UserID: vendor.ID}))

	err := uc.Create(dto.VendorProfileRequest{UserID: vendor.ID})
	assert.ErrorIs(t, err, domain.ErrProfileExists)
	assert.Len(t, profiles.profiles, 1)
}

func TestProfileCreate_FechaInvalida(t *testing.T) {
	users := newFakeUserRepo()
	vendor := users.seed("Farmacia Sur", "farmasur", entity.RoleVendor, entity.StatusActive)
	uc := usecase.NewVendorProfileUseCase(users, &fakeProfileRepo{})

	err := uc.Create(dto.VendorProfileRequest{
		UserID:         vendor.ID,
		OfferStartDate: "01/02/2026", // formato incorrecto
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update reemplaza la fila completa por user_id; el id del path manda sobre
// el user_id del body.
func TestProfileUpdate_IDDelPathManda(t *testing.T) {
	users := newFakeUserRepo()
	vendor := users.seed("Farmacia Sur", "farmasur", entity.RoleVendor, entity.StatusActive)
	profiles := &fakeProfileRepo{profiles: []*entity.VendorProfile{{ID: 7, UserID: vendor.ID, Category: "farmacia"}}}
	uc := usecase.NewVendorProfileUseCase(users, profiles)

	err := uc.Update(vendor.ID, dto.VendorProfileRequest{
		UserID:   999, // ignorado: se usa el id del path
		Category: "droguería",
	})
	require.NoError(t, err)
	assert.Equal(t, "droguería", profiles.profiles[0].Category)
	assert.Equal(t, vendor.ID, profiles.profiles[0].UserID)
}

func TestProfileUpdate_NoExiste(t *testing.T) {
	users := newFakeUserRepo()
	uc := usecase.NewVendorProfileUseCase(users, &fakeProfileRepo{})

	err := uc.Update(999, dto.VendorProfileRequest{Category: "farmacia"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flags del request
// ──────────────────────────────────────────────────────────────────────────────

func TestVendorProfileRequest_Flags(t *testing.T) {
	verdadero := true
	falso := false

	assert.Equal(t, 1, dto.VendorProfileRequest{IsVerified: true}.VerifiedFlag())
	assert.Equal(t, 0, dto.VendorProfileRequest{IsVerified: false}.VerifiedFlag())

	// active sin enviar queda activo
	assert.Equal(t, 1, dto.VendorProfileRequest{}.ActiveFlag())
	assert.Equal(t, 1, dto.VendorProfileRequest{Active: &verdadero}.ActiveFlag())
	assert.Equal(t, 0, dto.VendorProfileRequest{Active: &falso}.ActiveFlag())
}
