package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
	"github.com/tu-usuario/medimarket-api/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

// MedicineRepo implementación del puerto MedicineRepository sobre PostgreSQL.
type MedicineRepo struct {
	db DB
}

// NewMedicineRepository construye el adaptador de persistencia para medicamentos.
func NewMedicineRepository(db DB) *MedicineRepo {
	return &MedicineRepo{db: db}
}

// Create inserta un medicamento y devuelve el id generado.
func (r *MedicineRepo) Create(m *entity.Medicine) (int64, error) {
	query := `
		INSERT INTO medicine (
			bucket_id, name, salt_composition, manufacturers, medicine_type,
			packaging, packaging_typ, mrp, cost_price, discount_percent,
			selling_price, offers_percent, prescription_required,
			storage, country_of_origin, manufacture_address,
			best_price, brought, image
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(context.Background(), query,
		m.BucketID, m.Name, m.SaltComposition, m.Manufacturers, m.MedicineType,
		m.Packaging, m.PackagingType, m.MRP, m.CostPrice, m.DiscountPercent,
		m.SellingPrice, m.OffersPercent, m.PrescriptionRequired,
		m.Storage, m.CountryOfOrigin, m.ManufactureAddress,
		m.BestPrice, m.Brought, m.Image,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert medicine: %w", err)
	}
	return id, nil
}

// ListByBucket proyección sin imágenes de todos los ítems de un bucket.
func (r *MedicineRepo) ListByBucket(bucketID int64) ([]*entity.MedicineSummary, error) {
	query := `
		SELECT id, bucket_id, name, salt_composition, manufacturers,
			packaging, mrp, discount_percent, selling_price
		FROM medicine WHERE bucket_id = $1 ORDER BY id`
	rows, err := r.db.Query(context.Background(), query, bucketID)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()
	var list []*entity.MedicineSummary
	for rows.Next() {
		var m entity.MedicineSummary
		if err := rows.Scan(&m.ID, &m.BucketID, &m.Name, &m.SaltComposition, &m.Manufacturers,
			&m.Packaging, &m.MRP, &m.DiscountPercent, &m.SellingPrice); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// GetByID obtiene un medicamento completo, o nil si no existe.
func (r *MedicineRepo) GetByID(id int64) (*entity.Medicine, error) {
	query := `
		SELECT id, bucket_id, name, salt_composition, manufacturers, medicine_type,
			packaging, packaging_typ, mrp, cost_price, discount_percent,
			selling_price, offers_percent, prescription_required,
			storage, country_of_origin, manufacture_address,
			best_price, brought, image
		FROM medicine WHERE id = $1`
	var m entity.Medicine
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.BucketID, &m.Name, &m.SaltComposition, &m.Manufacturers, &m.MedicineType,
		&m.Packaging, &m.PackagingType, &m.MRP, &m.CostPrice, &m.DiscountPercent,
		&m.SellingPrice, &m.OffersPercent, &m.PrescriptionRequired,
		&m.Storage, &m.CountryOfOrigin, &m.ManufactureAddress,
		&m.BestPrice, &m.Brought, &m.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine by id: %w", err)
	}
	return &m, nil
}

// Delete borra por id; devuelve filas afectadas.
func (r *MedicineRepo) Delete(id int64) (int64, error) {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM medicine WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete medicine: %w", err)
	}
	return tag.RowsAffected(), nil
}
