package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
	"github.com/tu-usuario/medimarket-api/internal/infrastructure/pdf"
)

func testBucket() *entity.Bucket {
	return &entity.Bucket{
		ID:              1,
		Name:            "Analgésicos",
		CreatedBy:       "super_admin",
		CreatedAt:       time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Capacity:        "500",
		NumberMedicines: 2,
	}
}

func testMedicines() []*entity.MedicineSummary {
	return []*entity.MedicineSummary{
		{
			ID: 1, BucketID: 1, Name: "Paracetamol 500mg",
			SaltComposition: "Paracetamol", Packaging: "caja x 20",
			MRP:             decimal.RequireFromString("120.50"),
			DiscountPercent: decimal.RequireFromString("17"),
			SellingPrice:    decimal.RequireFromString("99.90"),
		},
		{
			ID: 2, BucketID: 1, Name: "Ibuprofeno 400mg",
			SaltComposition: "Ibuprofeno", Packaging: "blister x 10",
			MRP:             decimal.RequireFromString("85.00"),
			DiscountPercent: decimal.Zero,
			SellingPrice:    decimal.RequireFromString("85.00"),
		},
	}
}

// El catálogo debe generar un documento PDF válido (bytes con cabecera %PDF).
func TestGenerateBucketCatalog_ProduceBytesPDF(t *testing.T) {
	g := pdf.NewMarotoCatalogGenerator()

	out, err := g.GenerateBucketCatalog(context.Background(), testBucket(), testMedicines())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "los bytes deben empezar con la cabecera PDF")
}

// Un bucket sin medicamentos también genera catálogo (solo cabecera y pie).
func TestGenerateBucketCatalog_SinMedicamentos(t *testing.T) {
	g := pdf.NewMarotoCatalogGenerator()

	out, err := g.GenerateBucketCatalog(context.Background(), testBucket(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
