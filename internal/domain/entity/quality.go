package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QualityParameter atributo medible asociado a una fase del catálogo
// (densidad, pH, IBU...). Los críticos bloquean la aprobación de la fase.
// Versionado con historial: al modificar se crea una versión nueva y la
// anterior queda inactiva.
type QualityParameter struct {
	ID          string
	Phase       Phase
	Name        string
	Description string
	MinValue    *decimal.Decimal
	MaxValue    *decimal.Decimal
	IsCritical  bool
	IsActive    bool
	Version     int
	CreatedAt   time.Time
}

// ProductionPhaseQuality valor registrado de un parámetro de calidad para una
// instancia de fase. Una instancia no pasa de UNDER_REVIEW a APPROVED mientras
// exista un valor crítico sin aprobar.
type ProductionPhaseQuality struct {
	ID                 string
	ProductionPhaseID  string
	QualityParameterID string
	Value              decimal.Decimal
	IsApproved         bool
	RecordedBy         string
	CreatedAt          time.Time
}
