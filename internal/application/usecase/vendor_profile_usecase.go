package usecase

import (
	"github.com/tu-usuario/medimarket-api/internal/application/dto"
	"github.com/tu-usuario/medimarket-api/internal/domain"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
	"github.com/tu-usuario/medimarket-api/internal/domain/repository"
)

// VendorProfileUseCase perfil de negocio de las cuentas vendor (vendors_info).
type VendorProfileUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.VendorProfileRepository
}

// NewVendorProfileUseCase construye el caso de uso.
func NewVendorProfileUseCase(userRepo repository.UserRepository, profileRepo repository.VendorProfileRepository) *VendorProfileUseCase {
	return &VendorProfileUseCase{userRepo: userRepo, profileRepo: profileRepo}
}

// Create crea el perfil de un vendor existente. Copia el nombre actual de la
// cuenta en ref_name; rechaza un segundo perfil para la misma cuenta.
func (uc *VendorProfileUseCase) Create(in dto.VendorProfileRequest) error {
	user, err := uc.userRepo.GetByIDAndRole(in.UserID, entity.RoleVendor)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	existing, err := uc.profileRepo.GetByUserID(in.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrProfileExists
	}
	profile, err := profileFromRequest(in)
	if err != nil {
		return err
	}
	profile.RefName = user.Name
	return uc.profileRepo.Create(profile)
}

// ListJoined devuelve todos los perfiles con los datos públicos de su cuenta.
func (uc *VendorProfileUseCase) ListJoined() ([]dto.VendorProfileResponse, error) {
	list, err := uc.profileRepo.ListJoined()
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorProfileResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProfileResponse(p))
	}
	return items, nil
}

// Update actualiza la fila completa del perfil por id de cuenta.
func (uc *VendorProfileUseCase) Update(userID int64, in dto.VendorProfileRequest) error {
	in.UserID = userID
	profile, err := profileFromRequest(in)
	if err != nil {
		return err
	}
	affected, err := uc.profileRepo.Update(profile)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func profileFromRequest(in dto.VendorProfileRequest) (*entity.VendorProfile, error) {
	start, err := dto.ParseOfferDate(in.OfferStartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := dto.ParseOfferDate(in.OfferEndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &entity.VendorProfile{
		UserID:              in.UserID,
		Category:            in.Category,
		Address:             in.Address,
		DrugLicense:         in.DrugLicense,
		GSTIN:               in.GSTIN,
		Mobile:              in.Mobile,
		Email:               in.Email,
		Logo:                in.Logo,
		Website:             in.Website,
		DeliveryTimeMinutes: in.DeliveryTimeMinutes,
		DeliveryRangeKm:     in.DeliveryRangeKm,
		Lat:                 in.Lat,
		Lng:                 in.Lng,
		UserDiscount:        in.UserDiscount,
		CompanyDiscount:     in.CompanyDiscount,
		VendorOfferUser:     in.VendorOfferUser,
		CompanyOfferUser:    in.CompanyOfferUser,
		OfferStartDate:      start,
		OfferEndDate:        end,
		IsVerified:          in.VerifiedFlag(),
		Active:              in.ActiveFlag(),
	}, nil
}

func toProfileResponse(p *entity.VendorProfileWithUser) dto.VendorProfileResponse {
	return dto.VendorProfileResponse{
		UserID:              p.UserID,
		UserName:            p.UserName,
		Username:            p.Username,
		Role:                p.Role,
		ID:                  p.ID,
		RefName:             p.RefName,
		Category:            p.Category,
		Address:             p.Address,
		DrugLicense:         p.DrugLicense,
		GSTIN:               p.GSTIN,
		Mobile:              p.Mobile,
		Email:               p.Email,
		Logo:                p.Logo,
		Website:             p.Website,
		DeliveryTimeMinutes: p.DeliveryTimeMinutes,
		DeliveryRangeKm:     p.DeliveryRangeKm,
		Lat:                 p.Lat,
		Lng:                 p.Lng,
		UserDiscount:        p.UserDiscount,
		CompanyDiscount:     p.CompanyDiscount,
		VendorOfferUser:     p.VendorOfferUser,
		CompanyOfferUser:    p.CompanyOfferUser,
		OfferStartDate:      p.OfferStartDate,
		OfferEndDate:        p.OfferEndDate,
		IsVerified:          p.IsVerified,
		Active:              p.Active,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
