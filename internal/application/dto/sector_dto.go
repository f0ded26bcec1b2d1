package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSectorRequest entrada para crear un sector de planta.
type CreateSectorRequest struct {
	Name               string           `json:"name" validate:"required,min=1,max=200"`
	SupervisorID       string           `json:"supervisor_id"`
	Type               string           `json:"type"`
	Phase              string           `json:"phase"` // afinidad opcional con una fase del catálogo
	ProductionCapacity *decimal.Decimal `json:"production_capacity"`
	IsTimeActive       bool             `json:"is_time_active"`
}

// SectorResponse salida de un sector.
type SectorResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	SupervisorID       string           `json:"supervisor_id"`
	Type               string           `json:"type"`
	Phase              string           `json:"phase,omitempty"`
	ProductionCapacity *decimal.Decimal `json:"production_capacity"`
	ActualProduction   decimal.Decimal  `json:"actual_production"`
	IsActive           bool             `json:"is_active"`
	IsTimeActive       bool             `json:"is_time_active"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// SectorListResponse lista paginada de sectores.
type SectorListResponse struct {
	Items []SectorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
