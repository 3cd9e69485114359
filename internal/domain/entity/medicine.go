package entity

import "github.com/shopspring/decimal"

// Medicine ítem de medicamento dentro de un bucket. BucketID y Name son
// obligatorios; los precios van en NUMERIC(10,2).
type Medicine struct {
	ID                   int64
	BucketID             int64
	Name                 string
	SaltComposition      string
	Manufacturers        string
	MedicineType         string
	Packaging            string
	PackagingType        string
	MRP                  decimal.Decimal
	CostPrice            decimal.Decimal
	DiscountPercent      decimal.Decimal
	SellingPrice         decimal.Decimal
	OffersPercent        decimal.Decimal
	PrescriptionRequired int // 0/1 normalizado
	Storage              string
	CountryOfOrigin      string
	ManufactureAddress   string
	BestPrice            decimal.Decimal
	Brought              string
	Image                []string
}

// MedicineSummary proyección para el listado por bucket (sin imágenes).
type MedicineSummary struct {
	ID              int64
	BucketID        int64
	Name            string
	SaltComposition string
	Manufacturers   string
	Packaging       string
	MRP             decimal.Decimal
	DiscountPercent decimal.Decimal
	SellingPrice    decimal.Decimal
}
