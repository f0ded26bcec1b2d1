package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de producción. Los terminales (APPROVED, RETURNED) no revierten.
const (
	OrderStatusPending  = "PENDING"
	OrderStatusApproved = "APPROVED"
	OrderStatusReturned = "RETURNED"
)

// ProductionOrder orden de producción. Es dueña de su lote (relación 1:1 vía BatchID).
type ProductionOrder struct {
	ID             string
	ProductID      string
	BatchID        string
	Status         string
	Quantity       decimal.Decimal // cantidad solicitada
	ReturnReason   string
	CreatedAt      time.Time
	ValidationDate *time.Time // se estampa al aprobar o devolver
	CreatedBy      string
	ApprovedBy     string
}
