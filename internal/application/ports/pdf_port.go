package ports

import (
	"context"

	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
)

// CatalogPDFGenerator puerto para la representación PDF del catálogo de un bucket.
type CatalogPDFGenerator interface {
	GenerateBucketCatalog(ctx context.Context, bucket *entity.Bucket, medicines []*entity.MedicineSummary) ([]byte, error)
}
