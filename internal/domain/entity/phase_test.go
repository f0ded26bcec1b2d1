package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
)

// TestAllPhases_OrdenCompleto verifica que el catálogo tiene las 9 fases en el
// orden fijo de producción, sin huecos.
func TestAllPhases_OrdenCompleto(t *testing.T) {
	phases := entity.AllPhases()
	require.Len(t, phases, 9)

	expected := []entity.Phase{
		entity.PhaseMilling,
		entity.PhaseMashing,
		entity.PhaseFiltering,
		entity.PhaseBoiling,
		entity.PhaseFermentation,
		entity.PhaseMaturation,
		entity.PhaseCarbonation,
		entity.PhaseDealcoholization,
		entity.PhasePackaging,
	}
	assert.Equal(t, expected, phases)

	for i, p := range phases {
		assert.Equal(t, i+1, p.Order(), "el orden de %s debe ser su posición en el catálogo", p)
	}
}

// TestPhase_Next recorre el catálogo encadenando Next desde la primera fase.
func TestPhase_Next(t *testing.T) {
	current := entity.PhaseMilling
	visited := []entity.Phase{current}
	for {
		next, ok := current.Next()
		if !ok {
			break
		}
		visited = append(visited, next)
		current = next
	}
	assert.Equal(t, entity.AllPhases(), visited)

	_, ok := entity.PhasePackaging.Next()
	assert.False(t, ok, "Packaging es la última fase, no tiene siguiente")
}

// TestPhase_NextFaseInvalida una fase fuera de catálogo no tiene siguiente.
func TestPhase_NextFaseInvalida(t *testing.T) {
	_, ok := entity.Phase("DISTILLING").Next()
	assert.False(t, ok)
}

func TestPhase_IsValid(t *testing.T) {
	assert.True(t, entity.PhaseFermentation.IsValid())
	assert.False(t, entity.Phase("DISTILLING").IsValid())
	assert.False(t, entity.Phase("").IsValid())
}

func TestPhase_ComesBefore(t *testing.T) {
	assert.True(t, entity.PhaseMilling.ComesBefore(entity.PhaseMashing))
	assert.True(t, entity.PhaseCarbonation.ComesBefore(entity.PhasePackaging))
	assert.False(t, entity.PhasePackaging.ComesBefore(entity.PhaseMilling))
	assert.False(t, entity.PhaseBoiling.ComesBefore(entity.PhaseBoiling))
}

// TestPhase_IsTimeActive las fases de espera (fermentación, maduración,
// carbonatación, desalcoholización) no consumen tiempo activo de proceso.
func TestPhase_IsTimeActive(t *testing.T) {
	active := []entity.Phase{
		entity.PhaseMilling, entity.PhaseMashing, entity.PhaseFiltering,
		entity.PhaseBoiling, entity.PhasePackaging,
	}
	waiting := []entity.Phase{
		entity.PhaseFermentation, entity.PhaseMaturation,
		entity.PhaseCarbonation, entity.PhaseDealcoholization,
	}
	for _, p := range active {
		assert.True(t, p.IsTimeActive(), "%s debe ser de tiempo activo", p)
	}
	for _, p := range waiting {
		assert.False(t, p.IsTimeActive(), "%s debe ser de espera", p)
	}
}
