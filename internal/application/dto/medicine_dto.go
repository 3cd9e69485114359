package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBucketRequest campos del formulario multipart de /medicine/bucket.
// Los numéricos llegan como texto; el use case los convierte.
type CreateBucketRequest struct {
	BucketName      string `form:"bucket_name"`
	CreatedBy       string `form:"created_by"`
	CreatedAt       string `form:"createdAt"`
	Capacity        string `form:"capacity"`
	NumberMedicines string `form:"number_medicines"`
}

// CreateMedicineRequest campos del formulario multipart de /medicine/addmedicine.
type CreateMedicineRequest struct {
	BucketID             string `form:"bucket_id"`
	Name                 string `form:"name"`
	SaltComposition      string `form:"salt_composition"`
	Manufacturers        string `form:"manufacturers"`
	MedicineType         string `form:"medicine_type"`
	Packaging            string `form:"packaging"`
	PackagingType        string `form:"packaging_typ"`
	MRP                  string `form:"mrp"`
	CostPrice            string `form:"cost_price"`
	DiscountPercent      string `form:"discount_percent"`
	SellingPrice         string `form:"selling_price"`
	OffersPercent        string `form:"offers_percent"`
	PrescriptionRequired string `form:"prescription_required"`
	Storage              string `form:"storage"`
	CountryOfOrigin      string `form:"country_of_origin"`
	ManufactureAddress   string `form:"manufacture_address"`
	BestPrice            string `form:"best_price"`
	Brought              string `form:"brought"`
}

// NormalizePrescription coerce el flag de receta a 0/1. Solo "1", 1, true y
// "true" cuentan como 1; cualquier otro valor (incluido ausente) es 0.
func NormalizePrescription(v any) int {
	switch x := v.(type) {
	case string:
		if x == "1" || x == "true" {
			return 1
		}
	case bool:
		if x {
			return 1
		}
	case int:
		if x == 1 {
			return 1
		}
	case float64:
		if x == 1 {
			return 1
		}
	}
	return 0
}

// BucketResponse salida de un bucket.
type BucketResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Image           []string  `json:"image"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"createdAt"`
	Capacity        string    `json:"capacity"`
	NumberMedicines int       `json:"number_medicines"`
}

// MedicineSummaryResponse proyección para el listado por bucket.
type MedicineSummaryResponse struct {
	ID              int64           `json:"id"`
	BucketID        int64           `json:"bucket_id"`
	Name            string          `json:"name"`
	SaltComposition string          `json:"salt_composition"`
	Manufacturers   string          `json:"manufacturers"`
	Packaging       string          `json:"packaging"`
	MRP             decimal.Decimal `json:"mrp"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
}

// MedicineResponse salida completa de un medicamento.
type MedicineResponse struct {
	ID                   int64           `json:"id"`
	BucketID             int64           `json:"bucket_id"`
	Name                 string          `json:"name"`
	SaltComposition      string          `json:"salt_composition"`
	Manufacturers        string          `json:"manufacturers"`
	MedicineType         string          `json:"medicine_type"`
	Packaging            string          `json:"packaging"`
	PackagingType        string          `json:"packaging_typ"`
	MRP                  decimal.Decimal `json:"mrp"`
	CostPrice            decimal.Decimal `json:"cost_price"`
	DiscountPercent      decimal.Decimal `json:"discount_percent"`
	SellingPrice         decimal.Decimal `json:"selling_price"`
	OffersPercent        decimal.Decimal `json:"offers_percent"`
	PrescriptionRequired int             `json:"prescription_required"`
	Storage              string          `json:"storage"`
	CountryOfOrigin      string          `json:"country_of_origin"`
	ManufactureAddress   string          `json:"manufacture_address"`
	BestPrice            decimal.Decimal `json:"best_price"`
	Brought              string          `json:"brought"`
	Images               []string        `json:"images"`
}
