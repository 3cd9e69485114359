package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
)

// El toggle de estado es binario: Active ⇄ Blocked. Cualquier valor
// desconocido cae del lado seguro: Active.
func TestToggledStatus(t *testing.T) {
	assert.Equal(t, entity.StatusBlocked, entity.ToggledStatus(entity.StatusActive))
	assert.Equal(t, entity.StatusActive, entity.ToggledStatus(entity.StatusBlocked))
	assert.Equal(t, entity.StatusActive, entity.ToggledStatus(""))
	assert.Equal(t, entity.StatusActive, entity.ToggledStatus("desconocido"))
}
