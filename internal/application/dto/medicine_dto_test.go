package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/medimarket-api/internal/application/dto"
)

// El flag de receta acepta valores heterogéneos del formulario; solo "1", 1,
// true y "true" cuentan como 1. Todo lo demás (incluido ausente) es 0.
func TestNormalizePrescription(t *testing.T) {
	casos := []struct {
		nombre string
		in     any
		want   int
	}{
		{"string uno", "1", 1},
		{"string true", "true", 1},
		{"bool true", true, 1},
		{"int uno", 1, 1},
		{"float64 uno (JSON number)", float64(1), 1},
		{"string cero", "0", 0},
		{"string false", "false", 0},
		{"string TRUE mayúsculas no cuenta", "TRUE", 0},
		{"string yes no cuenta", "yes", 0},
		{"bool false", false, 0},
		{"int dos", 2, 0},
		{"vacío", "", 0},
		{"nil", nil, 0},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.want, dto.NormalizePrescription(c.in))
		})
	}
}
