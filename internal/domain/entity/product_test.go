package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
)

// TestApplicablePhases_ProductoAlcoholico un producto alcohólico salta la
// desalcoholización y conserva las 8 fases restantes en orden.
func TestApplicablePhases_ProductoAlcoholico(t *testing.T) {
	p := &entity.Product{Name: "IPA", IsAlcoholic: true}

	phases := p.ApplicablePhases()
	require.Len(t, phases, 8)
	assert.NotContains(t, phases, entity.PhaseDealcoholization)
	assert.Equal(t, entity.PhaseMilling, phases[0])
	assert.Equal(t, entity.PhasePackaging, phases[len(phases)-1])
}

// TestApplicablePhases_ProductoSinAlcohol un producto sin alcohol pasa por las
// 9 fases del catálogo, incluida la desalcoholización.
func TestApplicablePhases_ProductoSinAlcohol(t *testing.T) {
	p := &entity.Product{Name: "Lager 0.0", IsAlcoholic: false}

	phases := p.ApplicablePhases()
	require.Len(t, phases, 9)
	assert.Contains(t, phases, entity.PhaseDealcoholization)
}

// TestProcessingPhases_ExcluyeEmpaque las vistas de proceso nunca incluyen
// Packaging: el empaque no consume capacidad de proceso.
func TestProcessingPhases_ExcluyeEmpaque(t *testing.T) {
	alcoholica := &entity.Product{IsAlcoholic: true}
	sinAlcohol := &entity.Product{IsAlcoholic: false}

	assert.Len(t, alcoholica.ProcessingPhases(), 7)
	assert.Len(t, sinAlcohol.ProcessingPhases(), 8)
	assert.NotContains(t, alcoholica.ProcessingPhases(), entity.PhasePackaging)
	assert.NotContains(t, sinAlcohol.ProcessingPhases(), entity.PhasePackaging)
}

func TestPhaseTemplate(t *testing.T) {
	tpl := &entity.ProductPhase{
		Phase:          entity.PhaseBoiling,
		StandardOutput: decimal.NewFromInt(100),
	}
	p := &entity.Product{Phases: []*entity.ProductPhase{tpl}}

	assert.Same(t, tpl, p.PhaseTemplate(entity.PhaseBoiling))
	assert.Nil(t, p.PhaseTemplate(entity.PhaseMilling))
}
