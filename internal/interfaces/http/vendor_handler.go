package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/medimarket-api/internal/application/auth"
	"github.com/tu-usuario/medimarket-api/internal/application/dto"
	"github.com/tu-usuario/medimarket-api/internal/application/usecase"
	"github.com/tu-usuario/medimarket-api/internal/domain"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
)

// VendorHandler gestión de cuentas vendor y de su perfil de negocio
// (super_admin o admin; el login de vendor es público).
type VendorHandler struct {
	authUC    *auth.AuthUseCase
	accountUC *usecase.AccountUseCase
	profileUC *usecase.VendorProfileUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(authUC *auth.AuthUseCase, accountUC *usecase.AccountUseCase, profileUC *usecase.VendorProfileUseCase) *VendorHandler {
	return &VendorHandler{authUC: authUC, accountUC: accountUC, profileUC: profileUC}
}

// Login godoc
// @Summary      Login de vendor (misma semántica que /auth/login)
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /vendor/vendorlogin [post]
func (h *VendorHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Username and password required"})
	}
	out, err := h.authUC.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Crear cuenta vendor
// @Tags         vendor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddAccountRequest  true  "name, username, password"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /vendor/add [post]
func (h *VendorHandler) Add(c *fiber.Ctx) error {
	var in dto.AddAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "All fields required"})
	}
	if err := h.authUC.AddSubordinate(GetRole(c), entity.RoleVendor, in); err != nil {
		return mapAccountError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Vendor created successfully"})
}

// List godoc
// @Summary      Listar cuentas vendor
// @Tags         vendor
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /vendor/list [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	list, err := h.accountUC.ListByRole(entity.RoleVendor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetOne godoc
// @Summary      Obtener una cuenta vendor
// @Tags         vendor
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del vendor"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /vendor/list/{id} [get]
func (h *VendorHandler) GetOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.accountUC.GetByRole(id, entity.RoleVendor)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Vendor not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cuenta vendor (password vacío conserva el hash)
// @Tags         vendor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID del vendor"
// @Param        body  body  dto.UpdateAccountRequest true  "name, username, password"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /vendor/update/{id} [patch]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.accountUC.Update(id, in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Vendor not found"})
		}
		return mapAccountError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Vendor details updated successfully"})
}

// Status godoc
// @Summary      Alternar estado Active/Blocked del vendor (espeja el perfil)
// @Tags         vendor
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del vendor"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /vendor/status/{id} [post]
func (h *VendorHandler) Status(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	newStatus, err := h.accountUC.ToggleVendorStatus(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Vendor not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Vendor status changed to " + newStatus})
}

// InfoCreate godoc
// @Summary      Crear el perfil de negocio de un vendor
// @Tags         vendor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendorProfileRequest  true  "Datos del perfil"
// @Success      201   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /vendor/info [post]
func (h *VendorHandler) InfoCreate(c *fiber.Ctx) error {
	var in dto.VendorProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id is required"})
	}
	if err := h.profileUC.Create(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Vendor user not found"})
		case errors.Is(err, domain.ErrProfileExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "Vendor info already exists"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha de oferta inválida (use YYYY-MM-DD)"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Vendor info added successfully"})
}

// InfoList godoc
// @Summary      Listar todos los perfiles unidos con su cuenta
// @Tags         vendor
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VendorProfileResponse
// @Router       /vendor/info/all [get]
func (h *VendorHandler) InfoList(c *fiber.Ctx) error {
	list, err := h.profileUC.ListJoined()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// InfoUpdate godoc
// @Summary      Actualizar el perfil de un vendor (fila completa por user_id)
// @Tags         vendor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID de la cuenta vendor"
// @Param        body  body  dto.VendorProfileRequest  true  "Datos del perfil"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /vendor/info/{id} [put]
func (h *VendorHandler) InfoUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.VendorProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.profileUC.Update(id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Vendor info not found"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha de oferta inválida (use YYYY-MM-DD)"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "Vendor info updated successfully"})
}
