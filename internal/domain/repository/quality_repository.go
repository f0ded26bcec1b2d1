package repository

import "github.com/tu-usuario/cerveceria-pro/internal/domain/entity"

// QualityRepository parámetros de calidad y valores registrados por instancia
// de fase. ListUnapprovedCritical es la puerta de calidad que consulta el motor
// antes de aprobar una fase.
type QualityRepository interface {
	CreateParameter(p *entity.QualityParameter) error
	GetParameterByID(id string) (*entity.QualityParameter, error)
	ListParametersByPhase(phase entity.Phase) ([]*entity.QualityParameter, error)
	RecordValue(v *entity.ProductionPhaseQuality) error
	GetValueByID(id string) (*entity.ProductionPhaseQuality, error)
	ApproveValue(id string) error
	ListValuesByPhaseInstance(productionPhaseID string) ([]*entity.ProductionPhaseQuality, error)
	ListUnapprovedCritical(productionPhaseID string) ([]*entity.ProductionPhaseQuality, error)
}
