package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorProfileRequest entrada para crear/actualizar el perfil de un vendor.
// Los flags is_verified/active se coercen a 0/1; active sin enviar queda en 1.
// Las fechas de oferta van como "2006-01-02".
type VendorProfileRequest struct {
	UserID              int64           `json:"user_id"`
	Category            string          `json:"category"`
	Address             string          `json:"address"`
	DrugLicense         string          `json:"druglicense"`
	GSTIN               string          `json:"gstin"`
	Mobile              string          `json:"mobile"`
	Email               string          `json:"email"`
	Logo                string          `json:"logo"`
	Website             string          `json:"website"`
	DeliveryTimeMinutes int             `json:"delivery_time_minutes"`
	DeliveryRangeKm     decimal.Decimal `json:"delivery_range_km"`
	Lat                 float64         `json:"lat"`
	Lng                 float64         `json:"lng"`
	UserDiscount        decimal.Decimal `json:"user_discount"`
	CompanyDiscount     decimal.Decimal `json:"company_discount"`
	VendorOfferUser     decimal.Decimal `json:"vendor_offer_user"`
	CompanyOfferUser    decimal.Decimal `json:"company_offer_user"`
	OfferStartDate      string          `json:"offer_start_date"`
	OfferEndDate        string          `json:"offer_end_date"`
	IsVerified          bool            `json:"is_verified"`
	Active              *bool           `json:"active"`
}

// VerifiedFlag devuelve is_verified como 0/1.
func (r VendorProfileRequest) VerifiedFlag() int {
	if r.IsVerified {
		return 1
	}
	return 0
}

// ActiveFlag devuelve active como 0/1; sin valor booleano explícito queda activo.
func (r VendorProfileRequest) ActiveFlag() int {
	if r.Active == nil || *r.Active {
		return 1
	}
	return 0
}

// ParseOfferDate interpreta una fecha "2006-01-02"; vacía devuelve nil.
func ParseOfferDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// VendorProfileResponse perfil unido con los datos públicos de su cuenta
// (para /vendor/info/all).
type VendorProfileResponse struct {
	UserID              int64           `json:"user_id"`
	UserName            string          `json:"user_name"`
	Username            string          `json:"username"`
	Role                string          `json:"role"`
	ID                  int64           `json:"id"`
	RefName             string          `json:"ref_name"`
	Category            string          `json:"category"`
	Address             string          `json:"address"`
	DrugLicense         string          `json:"druglicense"`
	GSTIN               string          `json:"gstin"`
	Mobile              string          `json:"mobile"`
	Email               string          `json:"email"`
	Logo                string          `json:"logo"`
	Website             string          `json:"website"`
	DeliveryTimeMinutes int             `json:"delivery_time_minutes"`
	DeliveryRangeKm     decimal.Decimal `json:"delivery_range_km"`
	Lat                 float64         `json:"lat"`
	Lng                 float64         `json:"lng"`
	UserDiscount        decimal.Decimal `json:"user_discount"`
	CompanyDiscount     decimal.Decimal `json:"company_discount"`
	VendorOfferUser     decimal.Decimal `json:"vendor_offer_user"`
	CompanyOfferUser    decimal.Decimal `json:"company_offer_user"`
	OfferStartDate      *time.Time      `json:"offer_start_date"`
	OfferEndDate        *time.Time      `json:"offer_end_date"`
	IsVerified          int             `json:"is_verified"`
	Active              int             `json:"active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
