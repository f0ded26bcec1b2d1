package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material materia prima del inventario. La reserva se modela moviendo cantidad
// del pool libre (Stock) al pool retenido (ReservedStock): cada operación es una
// actualización atómica sobre un solo registro. Nunca se elimina físicamente;
// se desactiva con IsActive.
type Material struct {
	ID            string
	Code          string // inmutable una vez asignado
	Name          string
	Supplier      string
	Unit          string // unidad de medida
	Stock         decimal.Decimal // >= 0, pool libre
	ReservedStock decimal.Decimal // >= 0, pool retenido
	Threshold     decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsBelowThreshold indica si el stock libre está en o por debajo del umbral de reposición.
func (m *Material) IsBelowThreshold() bool {
	return m.Stock.LessThanOrEqual(m.Threshold)
}
