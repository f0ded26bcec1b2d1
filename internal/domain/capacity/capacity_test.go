package capacity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/capacity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
)

func TestIncrease(t *testing.T) {
	s := &entity.Sector{ActualProduction: decimal.NewFromInt(10)}

	require.NoError(t, capacity.Increase(s, decimal.NewFromInt(5)))
	assert.True(t, s.ActualProduction.Equal(decimal.NewFromInt(15)))

	assert.ErrorIs(t, capacity.Increase(s, decimal.Zero), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, capacity.Increase(s, decimal.NewFromInt(-3)), domain.ErrInvalidQuantity)
}

// TestDecrease_AcotaEnCero reducir 5.0 sobre una carga de 1.0 deja la carga en
// 0.0, nunca negativa.
func TestDecrease_AcotaEnCero(t *testing.T) {
	s := &entity.Sector{ActualProduction: decimal.RequireFromString("1.0")}

	require.NoError(t, capacity.Decrease(s, decimal.RequireFromString("5.0")))
	assert.True(t, s.ActualProduction.Equal(decimal.Zero))
}

func TestDecrease(t *testing.T) {
	s := &entity.Sector{ActualProduction: decimal.NewFromInt(8)}

	require.NoError(t, capacity.Decrease(s, decimal.NewFromInt(3)))
	assert.True(t, s.ActualProduction.Equal(decimal.NewFromInt(5)))

	assert.ErrorIs(t, capacity.Decrease(s, decimal.Zero), domain.ErrInvalidQuantity)
}

// TestWouldExceedCapacity la capacidad declarada es informativa: el check vive
// en la entidad y quien llama decide advertir.
func TestWouldExceedCapacity(t *testing.T) {
	cap100 := decimal.NewFromInt(100)
	s := &entity.Sector{
		ProductionCapacity: &cap100,
		ActualProduction:   decimal.NewFromInt(80),
	}

	assert.False(t, s.WouldExceedCapacity(decimal.NewFromInt(20)))
	assert.True(t, s.WouldExceedCapacity(decimal.NewFromInt(21)))

	sinLimite := &entity.Sector{ActualProduction: decimal.NewFromInt(80)}
	assert.False(t, sinLimite.WouldExceedCapacity(decimal.NewFromInt(1000)), "sin capacidad declarada nunca se excede")
}
