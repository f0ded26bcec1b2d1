package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/ledger"
)

func material(stock, reserved string) *entity.Material {
	return &entity.Material{
		Stock:         decimal.RequireFromString(stock),
		ReservedStock: decimal.RequireFromString(reserved),
	}
}

// TestReserve_MueveStockAReservado reservar 3 sobre stock 10 deja 7 libres y
// 3 reservados; devolver 2 deja 9 libres y 1 reservado.
func TestReserve_MueveStockAReservado(t *testing.T) {
	m := material("10", "0")

	require.NoError(t, ledger.Reserve(m, decimal.NewFromInt(3)))
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(7)))
	assert.True(t, m.ReservedStock.Equal(decimal.NewFromInt(3)))

	require.NoError(t, ledger.Return(m, decimal.NewFromInt(2)))
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(9)))
	assert.True(t, m.ReservedStock.Equal(decimal.NewFromInt(1)))
}

// TestReserve_StockInsuficiente la reserva que excede el stock libre falla y
// deja el material intacto.
func TestReserve_StockInsuficiente(t *testing.T) {
	m := material("5", "2")

	err := ledger.Reserve(m, decimal.NewFromInt(6))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(5)))
	assert.True(t, m.ReservedStock.Equal(decimal.NewFromInt(2)))
}

// TestReserve_CantidadInvalida cero y negativos no son cantidades reservables.
func TestReserve_CantidadInvalida(t *testing.T) {
	m := material("10", "0")

	assert.ErrorIs(t, ledger.Reserve(m, decimal.Zero), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, ledger.Reserve(m, decimal.NewFromInt(-1)), domain.ErrInvalidQuantity)
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(10)))
}

// TestReturn_AcotaReservadoEnCero devolver más de lo reservado suma todo al
// stock libre pero el reservado nunca queda negativo.
func TestReturn_AcotaReservadoEnCero(t *testing.T) {
	m := material("7", "1")

	require.NoError(t, ledger.Return(m, decimal.NewFromInt(3)))
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(10)))
	assert.True(t, m.ReservedStock.Equal(decimal.Zero))
}

// TestReserveReturn_RoundTrip reservar y devolver la misma cantidad restaura
// ambos campos exactamente.
func TestReserveReturn_RoundTrip(t *testing.T) {
	m := material("12.5", "0.5")
	amount := decimal.RequireFromString("4.25")

	require.NoError(t, ledger.Reserve(m, amount))
	require.NoError(t, ledger.Return(m, amount))
	assert.True(t, m.Stock.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, m.ReservedStock.Equal(decimal.RequireFromString("0.5")))
}

func TestIncrease(t *testing.T) {
	m := material("3", "1")

	require.NoError(t, ledger.Increase(m, decimal.NewFromInt(2)))
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(5)))
	assert.True(t, m.ReservedStock.Equal(decimal.NewFromInt(1)), "el reservado no se toca")

	assert.ErrorIs(t, ledger.Increase(m, decimal.Zero), domain.ErrInvalidQuantity)
}

func TestReduce(t *testing.T) {
	m := material("3", "0")

	require.NoError(t, ledger.Reduce(m, decimal.NewFromInt(2)))
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(1)))

	assert.ErrorIs(t, ledger.Reduce(m, decimal.NewFromInt(2)), domain.ErrInsufficientStock)
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(1)), "el stock queda intacto tras el fallo")
}

func TestToggleActive(t *testing.T) {
	m := material("3", "1")
	m.IsActive = true

	ledger.ToggleActive(m)
	assert.False(t, m.IsActive)
	ledger.ToggleActive(m)
	assert.True(t, m.IsActive)
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(3)))
}
