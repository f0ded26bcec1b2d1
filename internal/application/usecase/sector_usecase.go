package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/application/production"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/capacity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

// SectorUseCase casos de uso para sectores de planta. Los ajustes manuales de
// carga (reportes de producción fuera del motor) corren en transacción con
// bloqueo de fila, igual que los del motor.
type SectorUseCase struct {
	repo     repository.SectorRepository
	txRunner production.TxRunner
}

// NewSectorUseCase construye el caso de uso.
func NewSectorUseCase(repo repository.SectorRepository, txRunner production.TxRunner) *SectorUseCase {
	return &SectorUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un sector nuevo. ActualProduction inicia en cero.
func (uc *SectorUseCase) Create(in dto.CreateSectorRequest) (*dto.SectorResponse, error) {
	var affinity *entity.Phase
	if in.Phase != "" {
		phase := entity.Phase(in.Phase)
		if !phase.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		affinity = &phase
	}
	if in.ProductionCapacity != nil && in.ProductionCapacity.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	now := time.Now()
	sector := &entity.Sector{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		SupervisorID:       in.SupervisorID,
		Type:               in.Type,
		Phase:              affinity,
		ProductionCapacity: in.ProductionCapacity,
		ActualProduction:   decimal.Zero,
		IsActive:           true,
		IsTimeActive:       in.IsTimeActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(sector); err != nil {
		return nil, err
	}
	return toSectorResponse(sector), nil
}

// GetByID obtiene un sector por ID.
func (uc *SectorUseCase) GetByID(id string) (*dto.SectorResponse, error) {
	sector, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sector == nil {
		return nil, domain.ErrNotFound
	}
	return toSectorResponse(sector), nil
}

// List lista sectores con paginación.
func (uc *SectorUseCase) List(limit, offset int) (*dto.SectorListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SectorResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSectorResponse(s))
	}
	return &dto.SectorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// IncreaseProduction ajuste manual: suma carga comprometida al sector.
func (uc *SectorUseCase) IncreaseProduction(ctx context.Context, id string, amount decimal.Decimal) (*dto.SectorResponse, error) {
	return uc.adjust(ctx, id, func(s *entity.Sector) error {
		return capacity.Increase(s, amount)
	})
}

// DecreaseProduction ajuste manual: resta carga comprometida, acotada en cero.
func (uc *SectorUseCase) DecreaseProduction(ctx context.Context, id string, amount decimal.Decimal) (*dto.SectorResponse, error) {
	return uc.adjust(ctx, id, func(s *entity.Sector) error {
		return capacity.Decrease(s, amount)
	})
}

func (uc *SectorUseCase) adjust(ctx context.Context, id string, fn func(*entity.Sector) error) (*dto.SectorResponse, error) {
	var out *dto.SectorResponse
	err := uc.txRunner.RunProduction(ctx, func(r production.Repos) error {
		sector, err := r.Sectors.GetForUpdate(id)
		if err != nil {
			return err
		}
		if sector == nil {
			return domain.ErrNotFound
		}
		if err := fn(sector); err != nil {
			return err
		}
		sector.UpdatedAt = time.Now()
		if err := r.Sectors.Update(sector); err != nil {
			return err
		}
		out = toSectorResponse(sector)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toSectorResponse(s *entity.Sector) *dto.SectorResponse {
	if s == nil {
		return nil
	}
	resp := &dto.SectorResponse{
		ID:                 s.ID,
		Name:               s.Name,
		SupervisorID:       s.SupervisorID,
		Type:               s.Type,
		ProductionCapacity: s.ProductionCapacity,
		ActualProduction:   s.ActualProduction,
		IsActive:           s.IsActive,
		IsTimeActive:       s.IsTimeActive,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	if s.Phase != nil {
		resp.Phase = string(*s.Phase)
	}
	return resp
}
