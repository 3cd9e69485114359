package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/tu-usuario/medimarket-api/internal/application/ports"
	"github.com/tu-usuario/medimarket-api/pkg/config"
)

var _ ports.MediaStorage = (*S3Storage)(nil)

// S3Storage sube imágenes a un bucket compatible con S3 (MinIO, R2, AWS).
// Reemplaza al host de medios de terceros del sistema original; los objetos
// quedan accesibles por URL pública.
type S3Storage struct {
	client *s3.Client
	cfg    config.MediaConfig
}

// NewS3Storage construye el cliente con credenciales estáticas y, si se
// configuró, un endpoint propio (estilo MinIO).
func NewS3Storage(ctx context.Context, cfg config.MediaConfig) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)))
	if err != nil {
		return nil, fmt.Errorf("media: cargar configuración AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{client: client, cfg: cfg}, nil
}

// Upload sube el contenido bajo una clave fechada aleatoria y devuelve la URL pública.
func (s *S3Storage) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	key := storageKey(filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("media: subir objeto: %w", err)
	}
	return s.publicURL(key), nil
}

// storageKey genera una clave fechada con uuid conservando la extensión original.
func storageKey(filename string) string {
	d := time.Now()
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("uploads/%d/%d/%d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

func (s *S3Storage) publicURL(key string) string {
	if s.cfg.PublicBaseURL != "" {
		return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key
	}
	if s.cfg.Endpoint != "" {
		return strings.TrimRight(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
