package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/medimarket-api/internal/application/auth"
	"github.com/tu-usuario/medimarket-api/internal/application/dto"
	"github.com/tu-usuario/medimarket-api/internal/application/usecase"
	"github.com/tu-usuario/medimarket-api/internal/domain"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
)

// AdminHandler gestión de cuentas admin (solo super_admin).
type AdminHandler struct {
	authUC    *auth.AuthUseCase
	accountUC *usecase.AccountUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(authUC *auth.AuthUseCase, accountUC *usecase.AccountUseCase) *AdminHandler {
	return &AdminHandler{authUC: authUC, accountUC: accountUC}
}

// parseID lee el parámetro :id como int64; 0 y error en cualquier otro caso.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// Add godoc
// @Summary      Crear cuenta admin
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddAccountRequest  true  "name, username, password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/add [post]
func (h *AdminHandler) Add(c *fiber.Ctx) error {
	var in dto.AddAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "All fields required"})
	}
	if err := h.authUC.AddSubordinate(GetRole(c), entity.RoleAdmin, in); err != nil {
		return mapAccountError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Admin created successfully"})
}

// List godoc
// @Summary      Listar cuentas admin
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /admin/list [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	list, err := h.accountUC.ListByRole(entity.RoleAdmin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Actualizar cuenta admin (password vacío conserva el hash)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID del admin"
// @Param        body  body  dto.UpdateAccountRequest true  "name, username, password"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/update/{id} [patch]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
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
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Admin not found"})
		}
		return mapAccountError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Admin details updated successfully"})
}

// Status godoc
// @Summary      Bloquear cuenta admin (unidireccional)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del admin"
// @Success      200  {object}  map[string]string
// @Router       /admin/status/{id} [post]
func (h *AdminHandler) Status(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.accountUC.BlockAdmin(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"msg": "Admin Blocked Successfully"})
}

// Delete godoc
// @Summary      Eliminar cuenta admin
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del admin"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.accountUC.DeleteByRole(id, entity.RoleAdmin); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Admin not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Admin deleted successfully"})
}

// mapAccountError traduce los errores de alta/edición de cuentas.
func mapAccountError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "USERNAME_EXISTS", Message: "Username already exists"})
	case errors.Is(err, domain.ErrSuperAdminExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_EXISTS", Message: "SuperAdmin already exists"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Access denied"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
