package repository

import "github.com/tu-usuario/medimarket-api/internal/domain/entity"

// MedicineRepository puerto de persistencia para medicamentos.
type MedicineRepository interface {
	// Create inserta y devuelve el id generado.
	Create(medicine *entity.Medicine) (int64, error)
	// ListByBucket proyección sin imágenes; lista vacía si el bucket no tiene ítems.
	ListByBucket(bucketID int64) ([]*entity.MedicineSummary, error)
	GetByID(id int64) (*entity.Medicine, error)
	// Delete devuelve filas afectadas (0 = not found).
	Delete(id int64) (int64, error)
}
