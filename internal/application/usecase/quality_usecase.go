package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

// QualityUseCase parámetros de calidad por fase y valores registrados por
// instancia. Los críticos sin aprobar bloquean la aprobación de la fase en el
// motor de producción.
type QualityUseCase struct {
	repo   repository.QualityRepository
	phases repository.ProductionPhaseRepository
}

// NewQualityUseCase construye el caso de uso.
func NewQualityUseCase(repo repository.QualityRepository, phases repository.ProductionPhaseRepository) *QualityUseCase {
	return &QualityUseCase{repo: repo, phases: phases}
}

// CreateParameter declara un parámetro de calidad para una fase del catálogo.
func (uc *QualityUseCase) CreateParameter(in dto.CreateQualityParameterRequest) (*dto.QualityParameterResponse, error) {
	phase := entity.Phase(in.Phase)
	if !phase.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.QualityParameter{
		ID:          uuid.New().String(),
		Phase:       phase,
		Name:        in.Name,
		Description: in.Description,
		MinValue:    in.MinValue,
		MaxValue:    in.MaxValue,
		IsCritical:  in.IsCritical,
		IsActive:    true,
		Version:     1,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.CreateParameter(p); err != nil {
		return nil, err
	}
	return toParameterResponse(p), nil
}

// ListParameters lista los parámetros declarados para una fase del catálogo.
func (uc *QualityUseCase) ListParameters(phase string) ([]dto.QualityParameterResponse, error) {
	p := entity.Phase(phase)
	if !p.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListParametersByPhase(p)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QualityParameterResponse, 0, len(list))
	for _, param := range list {
		items = append(items, *toParameterResponse(param))
	}
	return items, nil
}

// RecordValue registra un valor medido para una instancia de fase. El valor
// nace sin aprobar; un crítico sin aprobar bloquea la fase en el motor.
func (uc *QualityUseCase) RecordValue(phaseInstanceID, recordedBy string, in dto.RecordQualityValueRequest) (*dto.QualityValueResponse, error) {
	instance, err := uc.phases.GetByID(phaseInstanceID)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, domain.ErrNotFound
	}
	param, err := uc.repo.GetParameterByID(in.QualityParameterID)
	if err != nil {
		return nil, err
	}
	if param == nil {
		return nil, domain.ErrNotFound
	}
	if param.Phase != instance.Phase {
		return nil, domain.ErrInvalidInput
	}
	v := &entity.ProductionPhaseQuality{
		ID:                 uuid.New().String(),
		ProductionPhaseID:  phaseInstanceID,
		QualityParameterID: in.QualityParameterID,
		Value:              in.Value,
		IsApproved:         false,
		RecordedBy:         recordedBy,
		CreatedAt:          time.Now(),
	}
	if err := uc.repo.RecordValue(v); err != nil {
		return nil, err
	}
	return toValueResponse(v), nil
}

// ApproveValue aprueba un valor registrado.
func (uc *QualityUseCase) ApproveValue(id string) (*dto.QualityValueResponse, error) {
	v, err := uc.repo.GetValueByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.ApproveValue(id); err != nil {
		return nil, err
	}
	v.IsApproved = true
	return toValueResponse(v), nil
}

// ListValues lista los valores registrados de una instancia de fase.
func (uc *QualityUseCase) ListValues(phaseInstanceID string) ([]dto.QualityValueResponse, error) {
	list, err := uc.repo.ListValuesByPhaseInstance(phaseInstanceID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QualityValueResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toValueResponse(v))
	}
	return items, nil
}

func toParameterResponse(p *entity.QualityParameter) *dto.QualityParameterResponse {
	if p == nil {
		return nil
	}
	return &dto.QualityParameterResponse{
		ID:          p.ID,
		Phase:       string(p.Phase),
		Name:        p.Name,
		Description: p.Description,
		MinValue:    p.MinValue,
		MaxValue:    p.MaxValue,
		IsCritical:  p.IsCritical,
		IsActive:    p.IsActive,
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
	}
}

func toValueResponse(v *entity.ProductionPhaseQuality) *dto.QualityValueResponse {
	if v == nil {
		return nil
	}
	return &dto.QualityValueResponse{
		ID:                 v.ID,
		ProductionPhaseID:  v.ProductionPhaseID,
		QualityParameterID: v.QualityParameterID,
		Value:              v.Value,
		IsApproved:         v.IsApproved,
		RecordedBy:         v.RecordedBy,
		CreatedAt:          v.CreatedAt,
	}
}
