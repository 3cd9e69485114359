package repository

import "github.com/tu-usuario/medimarket-api/internal/domain/entity"

// BucketRepository puerto de persistencia para buckets de medicamentos.
type BucketRepository interface {
	// Create inserta y devuelve el id generado.
	Create(bucket *entity.Bucket) (int64, error)
	List() ([]*entity.Bucket, error)
	GetByID(id int64) (*entity.Bucket, error)
}
