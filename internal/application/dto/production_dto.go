package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear una orden de producción.
// PlannedDate no puede estar en el pasado (se valida en el handler).
type CreateOrderRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Packaging   string          `json:"packaging" validate:"required"`
	PlannedDate time.Time       `json:"planned_date" validate:"required"`
}

// ReturnOrderRequest motivo de devolución de una orden.
type ReturnOrderRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

// SetUnderReviewRequest cantidades reales al enviar una fase a revisión.
type SetUnderReviewRequest struct {
	Input  decimal.Decimal `json:"input"`
	Output decimal.Decimal `json:"output"`
}

// ProductionOrderResponse salida de una orden de producción.
type ProductionOrderResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	BatchID        string          `json:"batch_id"`
	Status         string          `json:"status"`
	Quantity       decimal.Decimal `json:"quantity"`
	ReturnReason   string          `json:"return_reason,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ValidationDate *time.Time      `json:"validation_date,omitempty"`
	CreatedBy      string          `json:"created_by,omitempty"`
	ApprovedBy     string          `json:"approved_by,omitempty"`
}

// BatchResponse salida de un lote con sus instancias de fase.
type BatchResponse struct {
	ID            string                    `json:"id"`
	Packaging     string                    `json:"packaging"`
	Status        string                    `json:"status"`
	Quantity      decimal.Decimal           `json:"quantity"`
	PlannedDate   time.Time                 `json:"planned_date"`
	CreatedAt     time.Time                 `json:"created_at"`
	StartDate     *time.Time                `json:"start_date,omitempty"`
	CompletedDate *time.Time                `json:"completed_date,omitempty"`
	Phases        []ProductionPhaseResponse `json:"phases,omitempty"`
}

// ProductionPhaseResponse salida de una instancia de fase.
type ProductionPhaseResponse struct {
	ID             string           `json:"id"`
	BatchID        string           `json:"batch_id"`
	Phase          string           `json:"phase"`
	PhaseOrder     int              `json:"phase_order"`
	SectorID       string           `json:"sector_id"`
	Status         string           `json:"status"`
	StandardInput  decimal.Decimal  `json:"standard_input"`
	StandardOutput decimal.Decimal  `json:"standard_output"`
	Input          *decimal.Decimal `json:"input,omitempty"`
	Output         *decimal.Decimal `json:"output,omitempty"`
	StartDate      *time.Time       `json:"start_date,omitempty"`
	EndDate        *time.Time       `json:"end_date,omitempty"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []ProductionOrderResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// BatchListResponse lista paginada de lotes.
type BatchListResponse struct {
	Items []BatchResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
