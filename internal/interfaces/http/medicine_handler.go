package http

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/medimarket-api/internal/application/dto"
	"github.com/tu-usuario/medimarket-api/internal/application/usecase"
	"github.com/tu-usuario/medimarket-api/internal/domain"
)

// Límite de imágenes por alta (1 para bucket, 5 para medicamento).
const (
	maxBucketImages   = 1
	maxMedicineImages = 5
)

// MedicineHandler catálogo público: buckets, medicamentos y catálogo PDF.
type MedicineHandler struct {
	uc *usecase.MedicineUseCase
}

// NewMedicineHandler construye el handler.
func NewMedicineHandler(uc *usecase.MedicineUseCase) *MedicineHandler {
	return &MedicineHandler{uc: uc}
}

// imageFiles extrae los archivos del campo multipart "images", con tope.
func imageFiles(c *fiber.Ctx, max int) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) > max {
		files = files[:max]
	}
	return files, nil
}

// CreateBucket godoc
// @Summary      Crear bucket de medicamentos (multipart, 1 imagen)
// @Tags         medicine
// @Accept       multipart/form-data
// @Produce      json
// @Param        bucket_name  formData  string  true   "Nombre del bucket"
// @Param        images       formData  file    false  "Imagen del bucket"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /medicine/bucket [post]
func (h *MedicineHandler) CreateBucket(c *fiber.Ctx) error {
	var in dto.CreateBucketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	if in.BucketName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bucket_name is required"})
	}
	files, _ := imageFiles(c, maxBucketImages)
	id, images, err := h.uc.CreateBucket(c.Context(), in, files)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo numérico inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":      "Bucket added successfully",
		"images":   images,
		"bucketId": id,
	})
}

// ListBuckets godoc
// @Summary      Listar buckets
// @Tags         medicine
// @Produce      json
// @Success      200  {array}  dto.BucketResponse
// @Router       /medicine/bucket/list [get]
func (h *MedicineHandler) ListBuckets(c *fiber.Ctx) error {
	list, err := h.uc.ListBuckets()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Catalog godoc
// @Summary      Catálogo PDF de los medicamentos de un bucket
// @Tags         medicine
// @Produce      application/pdf
// @Param        id  path  int  true  "ID del bucket"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /medicine/bucket/{id}/catalog [get]
func (h *MedicineHandler) Catalog(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	pdfBytes, err := h.uc.BucketCatalogPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Bucket not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="catalog-`+strconv.FormatInt(id, 10)+`.pdf"`)
	return c.Send(pdfBytes)
}

// CreateMedicine godoc
// @Summary      Crear medicamento (multipart, hasta 5 imágenes)
// @Tags         medicine
// @Accept       multipart/form-data
// @Produce      json
// @Param        bucket_id  formData  string  true   "ID del bucket"
// @Param        name       formData  string  true   "Nombre del medicamento"
// @Param        images     formData  file    false  "Imágenes (máx. 5)"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /medicine/addmedicine [post]
func (h *MedicineHandler) CreateMedicine(c *fiber.Ctx) error {
	var in dto.CreateMedicineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	if in.BucketID == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Bucket ID and Medicine Name are required"})
	}
	files, _ := imageFiles(c, maxMedicineImages)
	id, images, err := h.uc.CreateMedicine(c.Context(), in, files)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo numérico inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":        "Medicine added successfully",
		"images":     images,
		"medicineId": id,
	})
}

// GetMedicine godoc
// @Summary      Obtener un medicamento completo
// @Tags         medicine
// @Produce      json
// @Param        id  path  int  true  "ID del medicamento"
// @Success      200  {object}  dto.MedicineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /medicine/getMedicine/{id} [get]
func (h *MedicineHandler) GetMedicine(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetMedicine(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Medicine not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByBucket godoc
// @Summary      Listar los medicamentos de un bucket (proyección sin imágenes)
// @Tags         medicine
// @Produce      json
// @Param        id  path  int  true  "ID del bucket"
// @Success      200  {array}  dto.MedicineSummaryResponse
// @Router       /medicine/getRelavantDtaMedicine/{id} [get]
func (h *MedicineHandler) ListByBucket(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	list, err := h.uc.ListByBucket(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Delete godoc
// @Summary      Eliminar un medicamento
// @Tags         medicine
// @Produce      json
// @Param        id  path  int  true  "ID del medicamento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /medicine/deleteMdecine/{id} [delete]
func (h *MedicineHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.DeleteMedicine(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Medicine not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Medicine deleted successfully"})
}
