// Package capacity lleva la carga de producción comprometida por sector
// (servicio de dominio). La capacidad declarada es informativa: quien llama
// decide advertir, nunca se bloquea aquí.
package capacity

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
)

// Increase suma amount a la producción comprometida del sector.
func Increase(s *entity.Sector, amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	s.ActualProduction = s.ActualProduction.Add(amount)
	return nil
}

// Decrease resta amount acotando en cero. No falla por quedar corto: los
// reportes de producción pueden llegar desordenados y el piso en cero es
// la semántica esperada.
func Decrease(s *entity.Sector, amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	s.ActualProduction = s.ActualProduction.Sub(amount)
	if s.ActualProduction.IsNegative() {
		s.ActualProduction = decimal.Zero
	}
	return nil
}
