package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una instancia de fase dentro de un lote.
const (
	PhaseStatusPending     = "PENDING"
	PhaseStatusInProgress  = "IN_PROGRESS"
	PhaseStatusUnderReview = "UNDER_REVIEW"
	PhaseStatusApproved    = "APPROVED"
	PhaseStatusRejected    = "REJECTED"
	PhaseStatusCancelled   = "CANCELLED" // suspensión masiva por cancelación del lote
)

// ProductionPhase instancia concreta de una fase del catálogo dentro de un lote.
// Exactamente una por fase aplicable, ordenadas por Phase.Order(). Una instancia
// no puede iniciar mientras alguna de orden inferior no esté APPROVED.
type ProductionPhase struct {
	ID             string
	BatchID        string
	Phase          Phase
	SectorID       string
	Status         string
	StandardInput  decimal.Decimal // copiado de la plantilla, escalado por la cantidad del lote
	StandardOutput decimal.Decimal
	Input          *decimal.Decimal // reales, se registran al enviar a revisión
	Output         *decimal.Decimal
	StartDate      *time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
}

// IsTerminal indica si la instancia ya no admite transiciones.
func (p *ProductionPhase) IsTerminal() bool {
	switch p.Status {
	case PhaseStatusApproved, PhaseStatusRejected, PhaseStatusCancelled:
		return true
	}
	return false
}
