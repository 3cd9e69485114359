package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorProfile datos de negocio extendidos de una cuenta vendor (vendors_info).
// Máximo un perfil por cuenta; RefName es copia desnormalizada del nombre de la
// cuenta al momento de crear el perfil.
type VendorProfile struct {
	ID                  int64
	UserID              int64
	RefName             string
	Category            string
	Address             string
	DrugLicense         string
	GSTIN               string
	Mobile              string
	Email               string
	Logo                string
	Website             string
	DeliveryTimeMinutes int
	DeliveryRangeKm     decimal.Decimal
	Lat                 float64
	Lng                 float64
	UserDiscount        decimal.Decimal
	CompanyDiscount     decimal.Decimal
	VendorOfferUser     decimal.Decimal
	CompanyOfferUser    decimal.Decimal
	OfferStartDate      *time.Time
	OfferEndDate        *time.Time
	IsVerified          int // 0/1
	Active              int // 0/1, espejo de users.active_status
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// VendorProfileWithUser perfil unido con su cuenta dueña (para /vendor/info/all).
type VendorProfileWithUser struct {
	VendorProfile
	UserName string
	Username string
	Role     string
}
