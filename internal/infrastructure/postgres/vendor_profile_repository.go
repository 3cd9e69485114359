package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/medimarket-api/internal/domain"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
	"github.com/tu-usuario/medimarket-api/internal/domain/repository"
)

var _ repository.VendorProfileRepository = (*VendorProfileRepo)(nil)

// VendorProfileRepo implementación del puerto VendorProfileRepository sobre PostgreSQL.
type VendorProfileRepo struct {
	db DB
}

// NewVendorProfileRepository construye el adaptador de persistencia para vendors_info.
func NewVendorProfileRepository(db DB) *VendorProfileRepo {
	return &VendorProfileRepo{db: db}
}

const profileColumns = `
	id, user_id, ref_name, category, address, druglicense, gstin, mobile, email,
	logo, website, delivery_time_minutes, delivery_range_km, lat, lng,
	user_discount, company_discount, vendor_offer_user, company_offer_user,
	offer_start_date, offer_end_date, is_verified, active, created_at, updated_at`

// Create persiste el perfil de un vendor. El índice único de user_id
// garantiza un solo perfil por cuenta aunque dos peticiones compitan.
func (r *VendorProfileRepo) Create(p *entity.VendorProfile) error {
	query := `
		INSERT INTO vendors_info (
			user_id, ref_name, category, address, druglicense, gstin, mobile, email,
			logo, website, delivery_time_minutes, delivery_range_km, lat, lng,
			user_discount, company_discount, vendor_offer_user, company_offer_user,
			offer_start_date, offer_end_date, is_verified, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(context.Background(), query,
		p.UserID, p.RefName, p.Category, p.Address, p.DrugLicense, p.GSTIN, p.Mobile, p.Email,
		p.Logo, p.Website, p.DeliveryTimeMinutes, p.DeliveryRangeKm, p.Lat, p.Lng,
		p.UserDiscount, p.CompanyDiscount, p.VendorOfferUser, p.CompanyOfferUser,
		p.OfferStartDate, p.OfferEndDate, p.IsVerified, p.Active,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("insert vendor profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de una cuenta vendor, o nil si no existe.
func (r *VendorProfileRepo) GetByUserID(userID int64) (*entity.VendorProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM vendors_info WHERE user_id = $1`
	var p entity.VendorProfile
	err := r.db.QueryRow(context.Background(), query, userID).Scan(
		&p.ID, &p.UserID, &p.RefName, &p.Category, &p.Address, &p.DrugLicense, &p.GSTIN, &p.Mobile, &p.Email,
		&p.Logo, &p.Website, &p.DeliveryTimeMinutes, &p.DeliveryRangeKm, &p.Lat, &p.Lng,
		&p.UserDiscount, &p.CompanyDiscount, &p.VendorOfferUser, &p.CompanyOfferUser,
		&p.OfferStartDate, &p.OfferEndDate, &p.IsVerified, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor profile: %w", err)
	}
	return &p, nil
}

// ListJoined devuelve todos los perfiles unidos con id/nombre/username/rol de la cuenta dueña.
func (r *VendorProfileRepo) ListJoined() ([]*entity.VendorProfileWithUser, error) {
	query := `
		SELECT u.name AS user_name, u.username, u.role,
			v.id, v.user_id, v.ref_name, v.category, v.address, v.druglicense, v.gstin, v.mobile, v.email,
			v.logo, v.website, v.delivery_time_minutes, v.delivery_range_km, v.lat, v.lng,
			v.user_discount, v.company_discount, v.vendor_offer_user, v.company_offer_user,
			v.offer_start_date, v.offer_end_date, v.is_verified, v.active, v.created_at, v.updated_at
		FROM vendors_info v
		JOIN users u ON v.user_id = u.id
		ORDER BY v.id`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vendor profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.VendorProfileWithUser
	for rows.Next() {
		var p entity.VendorProfileWithUser
		if err := rows.Scan(
			&p.UserName, &p.Username, &p.Role,
			&p.ID, &p.UserID, &p.RefName, &p.Category, &p.Address, &p.DrugLicense, &p.GSTIN, &p.Mobile, &p.Email,
			&p.Logo, &p.Website, &p.DeliveryTimeMinutes, &p.DeliveryRangeKm, &p.Lat, &p.Lng,
			&p.UserDiscount, &p.CompanyDiscount, &p.VendorOfferUser, &p.CompanyOfferUser,
			&p.OfferStartDate, &p.OfferEndDate, &p.IsVerified, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vendor profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza la fila completa por user_id y estampa updated_at; devuelve filas afectadas.
func (r *VendorProfileRepo) Update(p *entity.VendorProfile) (int64, error) {
	query := `
		UPDATE vendors_info SET
			category = $2, address = $3, druglicense = $4, gstin = $5, mobile = $6, email = $7,
			logo = $8, website = $9, delivery_time_minutes = $10, delivery_range_km = $11,
			lat = $12, lng = $13, user_discount = $14, company_discount = $15,
			vendor_offer_user = $16, company_offer_user = $17,
			offer_start_date = $18, offer_end_date = $19, is_verified = $20, active = $21,
			updated_at = now()
		WHERE user_id = $1`
	tag, err := r.db.Exec(context.Background(), query,
		p.UserID, p.Category, p.Address, p.DrugLicense, p.GSTIN, p.Mobile, p.Email,
		p.Logo, p.Website, p.DeliveryTimeMinutes, p.DeliveryRangeKm, p.Lat, p.Lng,
		p.UserDiscount, p.CompanyDiscount, p.VendorOfferUser, p.CompanyOfferUser,
		p.OfferStartDate, p.OfferEndDate, p.IsVerified, p.Active,
	)
	if err != nil {
		return 0, fmt.Errorf("update vendor profile: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateActive fija el flag espejo del estado de la cuenta.
func (r *VendorProfileRepo) UpdateActive(userID int64, active int) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE vendors_info SET active = $2, updated_at = now() WHERE user_id = $1`,
		userID, active)
	if err != nil {
		return fmt.Errorf("update vendor profile active: %w", err)
	}
	return nil
}
