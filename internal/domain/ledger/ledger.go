// Package ledger implementa la contabilidad de stock/reserva de materias primas
// (servicio de dominio). Cada operación muta un único Material en memoria; la
// atomicidad frente a otras reservas la garantiza el caller bloqueando la fila
// (SELECT FOR UPDATE) dentro de una transacción.
package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
)

// Reserve mueve amount del pool libre al reservado.
// Falla con ErrInvalidQuantity si amount <= 0 y con ErrInsufficientStock si
// amount > stock libre; en ambos casos el material queda intacto.
func Reserve(m *entity.Material, amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	if amount.GreaterThan(m.Stock) {
		return domain.ErrInsufficientStock
	}
	m.Stock = m.Stock.Sub(amount)
	m.ReservedStock = m.ReservedStock.Add(amount)
	return nil
}

// Return devuelve amount del pool reservado al libre (reserva liberada sin
// consumir: fase rechazada, orden devuelta). ReservedStock se acota en cero.
func Return(m *entity.Material, amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	m.Stock = m.Stock.Add(amount)
	m.ReservedStock = m.ReservedStock.Sub(amount)
	if m.ReservedStock.IsNegative() {
		m.ReservedStock = decimal.Zero
	}
	return nil
}

// Increase entrada cruda de material: solo incrementa el stock libre.
func Increase(m *entity.Material, amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	m.Stock = m.Stock.Add(amount)
	return nil
}

// Reduce consumo o baja de material: solo decrementa el stock libre.
// Falla con ErrInsufficientStock si dejaría el stock negativo.
func Reduce(m *entity.Material, amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	if amount.GreaterThan(m.Stock) {
		return domain.ErrInsufficientStock
	}
	m.Stock = m.Stock.Sub(amount)
	return nil
}

// ToggleActive activa/desactiva el material sin tocar los campos de stock.
func ToggleActive(m *entity.Material) {
	m.IsActive = !m.IsActive
}
