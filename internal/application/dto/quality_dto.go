package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateQualityParameterRequest entrada para declarar un parámetro de calidad de una fase.
type CreateQualityParameterRequest struct {
	Phase       string           `json:"phase" validate:"required"`
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	MinValue    *decimal.Decimal `json:"min_value"`
	MaxValue    *decimal.Decimal `json:"max_value"`
	IsCritical  bool             `json:"is_critical"`
}

// RecordQualityValueRequest valor medido de un parámetro para una instancia de fase.
type RecordQualityValueRequest struct {
	QualityParameterID string          `json:"quality_parameter_id" validate:"required"`
	Value              decimal.Decimal `json:"value"`
}

// QualityParameterResponse salida de un parámetro de calidad.
type QualityParameterResponse struct {
	ID          string           `json:"id"`
	Phase       string           `json:"phase"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	MinValue    *decimal.Decimal `json:"min_value,omitempty"`
	MaxValue    *decimal.Decimal `json:"max_value,omitempty"`
	IsCritical  bool             `json:"is_critical"`
	IsActive    bool             `json:"is_active"`
	Version     int              `json:"version"`
	CreatedAt   time.Time        `json:"created_at"`
}

// QualityValueResponse valor registrado para una instancia de fase.
type QualityValueResponse struct {
	ID                 string          `json:"id"`
	ProductionPhaseID  string          `json:"production_phase_id"`
	QualityParameterID string          `json:"quality_parameter_id"`
	Value              decimal.Decimal `json:"value"`
	IsApproved         bool            `json:"is_approved"`
	RecordedBy         string          `json:"recorded_by,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}
