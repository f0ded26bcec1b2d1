package materials

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/ledger"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

// MaterialUseCase operaciones sobre materias primas. Las que mutan stock
// (reservar, devolver, aumentar, reducir, activar/desactivar) corren dentro de
// una transacción con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type MaterialUseCase struct {
	txRunner TxRunner
	repo     repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(txRunner TxRunner, repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{txRunner: txRunner, repo: repo}
}

// Create registra una materia prima nueva (intake inicial). El código es único
// e inmutable una vez asignado.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Stock.IsNegative() || in.Threshold.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	now := time.Now()
	m := &entity.Material{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		Supplier:      in.Supplier,
		Unit:          in.Unit,
		Stock:         in.Stock,
		ReservedStock: decimal.Zero,
		Threshold:     in.Threshold,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// ReserveStock mueve amount del pool libre al reservado, bloqueando la fila.
func (uc *MaterialUseCase) ReserveStock(ctx context.Context, id string, amount decimal.Decimal) (*dto.MaterialResponse, error) {
	return uc.mutate(ctx, id, func(m *entity.Material) error {
		return ledger.Reserve(m, amount)
	})
}

// ReturnStock devuelve amount del pool reservado al libre.
func (uc *MaterialUseCase) ReturnStock(ctx context.Context, id string, amount decimal.Decimal) (*dto.MaterialResponse, error) {
	return uc.mutate(ctx, id, func(m *entity.Material) error {
		return ledger.Return(m, amount)
	})
}

// IncreaseStock entrada cruda de material.
func (uc *MaterialUseCase) IncreaseStock(ctx context.Context, id string, amount decimal.Decimal) (*dto.MaterialResponse, error) {
	return uc.mutate(ctx, id, func(m *entity.Material) error {
		return ledger.Increase(m, amount)
	})
}

// ReduceStock consumo o baja directa de material.
func (uc *MaterialUseCase) ReduceStock(ctx context.Context, id string, amount decimal.Decimal) (*dto.MaterialResponse, error) {
	return uc.mutate(ctx, id, func(m *entity.Material) error {
		return ledger.Reduce(m, amount)
	})
}

// ToggleActive activa/desactiva el material sin tocar el stock.
func (uc *MaterialUseCase) ToggleActive(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	return uc.mutate(ctx, id, func(m *entity.Material) error {
		ledger.ToggleActive(m)
		return nil
	})
}

// mutate carga el material con bloqueo de fila, aplica fn y persiste, todo en
// una transacción. Si fn falla no se escribe nada.
func (uc *MaterialUseCase) mutate(ctx context.Context, id string, fn func(*entity.Material) error) (*dto.MaterialResponse, error) {
	var out *dto.MaterialResponse
	err := uc.txRunner.Run(ctx, func(materialRepo repository.MaterialRepository) error {
		m, err := materialRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		if err := fn(m); err != nil {
			return err
		}
		m.UpdatedAt = time.Now()
		if err := materialRepo.Update(m); err != nil {
			return err
		}
		out = toMaterialResponse(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una materia prima por ID.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(m), nil
}

// List lista materias primas con paginación.
func (uc *MaterialUseCase) List(ctx context.Context, limit, offset int) (*dto.MaterialListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListBelowThreshold materias primas en o por debajo del umbral de reposición.
func (uc *MaterialUseCase) ListBelowThreshold(ctx context.Context) ([]dto.MaterialResponse, error) {
	list, err := uc.repo.ListBelowThreshold()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return items, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:               m.ID,
		Code:             m.Code,
		Name:             m.Name,
		Supplier:         m.Supplier,
		Unit:             m.Unit,
		Stock:            m.Stock,
		ReservedStock:    m.ReservedStock,
		Threshold:        m.Threshold,
		IsBelowThreshold: m.IsBelowThreshold(),
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
