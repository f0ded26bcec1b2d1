package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sector área de trabajo de la planta (molienda, cocción, bodega de fermentación...).
// ProductionCapacity es informativa: el motor advierte cuando ActualProduction la
// supera pero no bloquea la operación. ActualProduction nunca baja de cero.
type Sector struct {
	ID                 string
	Name               string
	SupervisorID       string
	Type               string
	Phase              *Phase           // afinidad opcional con una fase del catálogo
	ProductionCapacity *decimal.Decimal // nil = sin capacidad declarada
	ActualProduction   decimal.Decimal  // >= 0, carga comprometida actual
	IsActive           bool
	IsTimeActive       bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// WouldExceedCapacity indica si sumar amount superaría la capacidad declarada.
// Siempre false cuando no hay capacidad declarada.
func (s *Sector) WouldExceedCapacity(amount decimal.Decimal) bool {
	if s.ProductionCapacity == nil {
		return false
	}
	return s.ActualProduction.Add(amount).GreaterThan(*s.ProductionCapacity)
}
