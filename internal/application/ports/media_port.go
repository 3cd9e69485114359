package ports

import (
	"context"
	"io"
)

// MediaStorage puerto hacia el host de medios de terceros. Sube una imagen y
// devuelve la URL pública con la que se persiste/retorna.
type MediaStorage interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)
}
