package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
	"github.com/tu-usuario/medimarket-api/internal/domain/repository"
)

var _ repository.BucketRepository = (*BucketRepo)(nil)

// BucketRepo implementación del puerto BucketRepository sobre PostgreSQL.
// La columna image es text[]: pgx la escanea directo a []string.
type BucketRepo struct {
	db DB
}

// NewBucketRepository construye el adaptador de persistencia para buckets.
func NewBucketRepository(db DB) *BucketRepo {
	return &BucketRepo{db: db}
}

// Create inserta un bucket y devuelve el id generado.
func (r *BucketRepo) Create(b *entity.Bucket) (int64, error) {
	query := `
		INSERT INTO bucket (name, image, created_by, created_at, capacity, number_medicines)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(context.Background(), query,
		b.Name, b.Image, b.CreatedBy, b.CreatedAt, b.Capacity, b.NumberMedicines,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert bucket: %w", err)
	}
	return id, nil
}

// List devuelve todos los buckets.
func (r *BucketRepo) List() ([]*entity.Bucket, error) {
	query := `
		SELECT id, name, image, created_by, created_at, capacity, number_medicines
		FROM bucket ORDER BY id`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bucket
	for rows.Next() {
		var b entity.Bucket
		if err := rows.Scan(&b.ID, &b.Name, &b.Image, &b.CreatedBy, &b.CreatedAt, &b.Capacity, &b.NumberMedicines); err != nil {
			return nil, fmt.Errorf("scan bucket: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// GetByID obtiene un bucket, o nil si no existe.
func (r *BucketRepo) GetByID(id int64) (*entity.Bucket, error) {
	query := `
		SELECT id, name, image, created_by, created_at, capacity, number_medicines
		FROM bucket WHERE id = $1`
	var b entity.Bucket
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Name, &b.Image, &b.CreatedBy, &b.CreatedAt, &b.Capacity, &b.NumberMedicines,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bucket by id: %w", err)
	}
	return &b, nil
}
