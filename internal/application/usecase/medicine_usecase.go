package usecase

import (
	"context"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/medimarket-api/internal/application/dto"
	"github.com/tu-usuario/medimarket-api/internal/application/ports"
	"github.com/tu-usuario/medimarket-api/internal/domain"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
	"github.com/tu-usuario/medimarket-api/internal/domain/repository"
)

// MedicineUseCase buckets y medicamentos: alta con subida de imágenes al host
// de medios, listados, detalle, borrado y catálogo PDF.
type MedicineUseCase struct {
	bucketRepo   repository.BucketRepository
	medicineRepo repository.MedicineRepository
	media        ports.MediaStorage
	pdf          ports.CatalogPDFGenerator
}

// NewMedicineUseCase construye el caso de uso.
func NewMedicineUseCase(
	bucketRepo repository.BucketRepository,
	medicineRepo repository.MedicineRepository,
	media ports.MediaStorage,
	pdf ports.CatalogPDFGenerator,
) *MedicineUseCase {
	return &MedicineUseCase{bucketRepo: bucketRepo, medicineRepo: medicineRepo, media: media, pdf: pdf}
}

// CreateBucket sube las imágenes, inserta el bucket y devuelve id y URLs.
func (uc *MedicineUseCase) CreateBucket(ctx context.Context, in dto.CreateBucketRequest, files []*multipart.FileHeader) (int64, []string, error) {
	images, err := uc.uploadAll(ctx, files)
	if err != nil {
		return 0, nil, err
	}
	count, err := parseIntField(in.NumberMedicines)
	if err != nil {
		return 0, nil, err
	}
	bucket := &entity.Bucket{
		Name:            in.BucketName,
		Image:           images,
		CreatedBy:       in.CreatedBy,
		CreatedAt:       parseCreatedAt(in.CreatedAt),
		Capacity:        in.Capacity,
		NumberMedicines: count,
	}
	id, err := uc.bucketRepo.Create(bucket)
	if err != nil {
		return 0, nil, err
	}
	return id, images, nil
}

// ListBuckets devuelve todos los buckets.
func (uc *MedicineUseCase) ListBuckets() ([]dto.BucketResponse, error) {
	list, err := uc.bucketRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BucketResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BucketResponse{
			ID:              b.ID,
			Name:            b.Name,
			Image:           b.Image,
			CreatedBy:       b.CreatedBy,
			CreatedAt:       b.CreatedAt,
			Capacity:        b.Capacity,
			NumberMedicines: b.NumberMedicines,
		})
	}
	return items, nil
}

// CreateMedicine sube las imágenes, normaliza el flag de receta e inserta.
func (uc *MedicineUseCase) CreateMedicine(ctx context.Context, in dto.CreateMedicineRequest, files []*multipart.FileHeader) (int64, []string, error) {
	bucketID, err := strconv.ParseInt(in.BucketID, 10, 64)
	if err != nil {
		return 0, nil, domain.ErrInvalidInput
	}
	images, err := uc.uploadAll(ctx, files)
	if err != nil {
		return 0, nil, err
	}
	med := &entity.Medicine{
		BucketID:             bucketID,
		Name:                 in.Name,
		SaltComposition:      in.SaltComposition,
		Manufacturers:        in.Manufacturers,
		MedicineType:         in.MedicineType,
		Packaging:            in.Packaging,
		PackagingType:        in.PackagingType,
		PrescriptionRequired: dto.NormalizePrescription(in.PrescriptionRequired),
		Storage:              in.Storage,
		CountryOfOrigin:      in.CountryOfOrigin,
		ManufactureAddress:   in.ManufactureAddress,
		Brought:              in.Brought,
		Image:                images,
	}
	for _, f := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{in.MRP, &med.MRP},
		{in.CostPrice, &med.CostPrice},
		{in.DiscountPercent, &med.DiscountPercent},
		{in.SellingPrice, &med.SellingPrice},
		{in.OffersPercent, &med.OffersPercent},
		{in.BestPrice, &med.BestPrice},
	} {
		v, err := parseDecimalField(f.raw)
		if err != nil {
			return 0, nil, err
		}
		*f.dst = v
	}
	id, err := uc.medicineRepo.Create(med)
	if err != nil {
		return 0, nil, err
	}
	return id, images, nil
}

// ListByBucket proyección sin imágenes; lista vacía (no error) si no hay ítems.
func (uc *MedicineUseCase) ListByBucket(bucketID int64) ([]dto.MedicineSummaryResponse, error) {
	list, err := uc.medicineRepo.ListByBucket(bucketID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MedicineSummaryResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MedicineSummaryResponse{
			ID:              m.ID,
			BucketID:        m.BucketID,
			Name:            m.Name,
			SaltComposition: m.SaltComposition,
			Manufacturers:   m.Manufacturers,
			Packaging:       m.Packaging,
			MRP:             m.MRP,
			DiscountPercent: m.DiscountPercent,
			SellingPrice:    m.SellingPrice,
		})
	}
	return items, nil
}

// GetMedicine devuelve el medicamento completo con su lista de imágenes.
func (uc *MedicineUseCase) GetMedicine(id int64) (*dto.MedicineResponse, error) {
	m, err := uc.medicineRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.MedicineResponse{
		ID:                   m.ID,
		BucketID:             m.BucketID,
		Name:                 m.Name,
		SaltComposition:      m.SaltComposition,
		Manufacturers:        m.Manufacturers,
		MedicineType:         m.MedicineType,
		Packaging:            m.Packaging,
		PackagingType:        m.PackagingType,
		MRP:                  m.MRP,
		CostPrice:            m.CostPrice,
		DiscountPercent:      m.DiscountPercent,
		SellingPrice:         m.SellingPrice,
		OffersPercent:        m.OffersPercent,
		PrescriptionRequired: m.PrescriptionRequired,
		Storage:              m.Storage,
		CountryOfOrigin:      m.CountryOfOrigin,
		ManufactureAddress:   m.ManufactureAddress,
		BestPrice:            m.BestPrice,
		Brought:              m.Brought,
		Images:               m.Image,
	}, nil
}

// DeleteMedicine borra por id.
func (uc *MedicineUseCase) DeleteMedicine(id int64) error {
	affected, err := uc.medicineRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// BucketCatalogPDF genera el catálogo PDF de los medicamentos de un bucket.
func (uc *MedicineUseCase) BucketCatalogPDF(ctx context.Context, bucketID int64) ([]byte, error) {
	bucket, err := uc.bucketRepo.GetByID(bucketID)
	if err != nil {
		return nil, err
	}
	if bucket == nil {
		return nil, domain.ErrNotFound
	}
	medicines, err := uc.medicineRepo.ListByBucket(bucketID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateBucketCatalog(ctx, bucket, medicines)
}

func (uc *MedicineUseCase) uploadAll(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		url, err := uc.media.Upload(ctx, fh.Filename, fh.Header.Get("Content-Type"), f, fh.Size)
		f.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// parseCreatedAt acepta RFC3339 o fecha simple; sin valor usable usa ahora.
func parseCreatedAt(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Now()
}

func parseIntField(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return n, nil
}

func parseDecimalField(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return v, nil
}
