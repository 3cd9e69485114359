package auth

import (
	"github.com/tu-usuario/medimarket-api/internal/application/dto"
	"github.com/tu-usuario/medimarket-api/internal/domain"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
	"github.com/tu-usuario/medimarket-api/internal/domain/repository"
	"github.com/tu-usuario/medimarket-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro del super_admin, login
// y alta de cuentas subordinadas (admin/vendor).
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterSuperAdmin crea la única cuenta super_admin. El SELECT previo da el
// mensaje amable; el índice parcial único es quien cierra la carrera.
func (uc *AuthUseCase) RegisterSuperAdmin(in dto.RegisterSuperAdminRequest) error {
	exists, err := uc.userRepo.ExistsByRole(entity.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrSuperAdminExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		CreatedBy:    entity.RoleSuperAdmin,
		ActiveStatus: entity.StatusActive,
	}
	return uc.userRepo.Create(user)
}

// Login verifica username/password y genera el JWT. Usuario inexistente y
// password incorrecto devuelven el mismo error: no se filtra existencia.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.PublicUser{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}

// allowedCreators roles que pueden crear cada rol subordinado.
var allowedCreators = map[string][]string{
	entity.RoleAdmin:  {entity.RoleSuperAdmin},
	entity.RoleVendor: {entity.RoleSuperAdmin, entity.RoleAdmin},
}

// AddSubordinate crea una cuenta admin o vendor en nombre de requesterRole.
// El username debe ser único a nivel global sin importar el rol.
func (uc *AuthUseCase) AddSubordinate(requesterRole, targetRole string, in dto.AddAccountRequest) error {
	allowed := false
	for _, r := range allowedCreators[targetRole] {
		if r == requesterRole {
			allowed = true
			break
		}
	}
	if !allowed {
		return domain.ErrForbidden
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         targetRole,
		CreatedBy:    requesterRole,
		ActiveStatus: entity.StatusActive,
	}
	return uc.userRepo.Create(user)
}
