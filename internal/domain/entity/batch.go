package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote de producción.
const (
	BatchStatusPendiente  = "PENDIENTE"
	BatchStatusEnProceso  = "EN_PROCESO"
	BatchStatusCompletado = "COMPLETADO"
	BatchStatusCancelado  = "CANCELADO"
)

// Batch lote de producción: una corrida de un producto avanzando por las fases
// en orden. StartDate se estampa solo en la primera salida de PENDIENTE;
// CompletedDate solo al pasar a COMPLETADO.
type Batch struct {
	ID            string
	Packaging     string // presentación de empaque (botella 330ml, lata, barril...)
	Status        string
	Quantity      decimal.Decimal
	PlannedDate   time.Time
	CreatedAt     time.Time
	StartDate     *time.Time
	CompletedDate *time.Time
}

// IsTerminal indica si el lote ya no admite transiciones.
func (b *Batch) IsTerminal() bool {
	return b.Status == BatchStatusCompletado || b.Status == BatchStatusCancelado
}
