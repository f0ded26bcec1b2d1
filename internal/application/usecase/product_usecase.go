package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

// ProductUseCase casos de uso para productos, sus plantillas de fase y recetas.
type ProductUseCase struct {
	repo      repository.ProductRepository
	phaseRepo repository.ProductPhaseRepository
	materials repository.MaterialRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	phaseRepo repository.ProductPhaseRepository,
	materials repository.MaterialRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, phaseRepo: phaseRepo, materials: materials}
}

// Create crea un producto nuevo, activo y sin plantillas.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		IsAlcoholic: in.IsAlcoholic,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con sus plantillas de fase y recetas.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	phases, err := uc.phaseRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	product.Phases = phases
	return toProductResponse(product), nil
}

// List lista productos con paginación (sin plantillas, para listados livianos).
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AddPhase declara una plantilla de fase para el producto. La fase debe
// pertenecer al catálogo, ser aplicable al producto y no estar ya declarada.
func (uc *ProductUseCase) AddPhase(productID string, in dto.CreateProductPhaseRequest) (*dto.ProductPhaseResponse, error) {
	phase := entity.Phase(in.Phase)
	if !phase.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if in.StandardOutput.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if phase == entity.PhaseDealcoholization && product.IsAlcoholic {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.phaseRepo.GetByProductAndPhase(productID, phase)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	tpl := &entity.ProductPhase{
		ID:             uuid.New().String(),
		ProductID:      productID,
		Phase:          phase,
		StandardOutput: in.StandardOutput,
		OutputUnit:     in.OutputUnit,
		EstimatedHours: in.EstimatedHours,
		CreatedAt:      time.Now(),
	}
	if err := uc.phaseRepo.Create(tpl); err != nil {
		return nil, err
	}
	return toProductPhaseResponse(tpl), nil
}

// AddRecipe agrega una línea de receta a una plantilla de fase del producto.
// El par (plantilla, material) es único.
func (uc *ProductUseCase) AddRecipe(productID, phase string, in dto.AddRecipeRequest) (*dto.RecipeResponse, error) {
	if in.StandardQuantity.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	tpl, err := uc.phaseRepo.GetByProductAndPhase(productID, entity.Phase(phase))
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrNotFound
	}
	material, err := uc.materials.GetByID(in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.phaseRepo.ListRecipes(tpl.ID)
	if err != nil {
		return nil, err
	}
	for _, line := range existing {
		if line.MaterialID == in.MaterialID {
			return nil, domain.ErrDuplicate
		}
	}
	recipe := &entity.Recipe{
		ID:               uuid.New().String(),
		ProductPhaseID:   tpl.ID,
		MaterialID:       in.MaterialID,
		StandardQuantity: in.StandardQuantity,
		CreatedAt:        time.Now(),
	}
	if err := uc.phaseRepo.AddRecipe(recipe); err != nil {
		return nil, err
	}
	return &dto.RecipeResponse{
		ID:               recipe.ID,
		MaterialID:       recipe.MaterialID,
		StandardQuantity: recipe.StandardQuantity,
	}, nil
}

// ToggleActive activa/desactiva un producto.
func (uc *ProductUseCase) ToggleActive(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.IsActive = !product.IsActive
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	applicable := p.ApplicablePhases()
	names := make([]string, 0, len(applicable))
	for _, phase := range applicable {
		names = append(names, string(phase))
	}
	resp := &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		IsAlcoholic:      p.IsAlcoholic,
		IsActive:         p.IsActive,
		ApplicablePhases: names,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	for _, tpl := range p.Phases {
		resp.Phases = append(resp.Phases, *toProductPhaseResponse(tpl))
	}
	return resp
}

func toProductPhaseResponse(tpl *entity.ProductPhase) *dto.ProductPhaseResponse {
	if tpl == nil {
		return nil
	}
	resp := &dto.ProductPhaseResponse{
		ID:             tpl.ID,
		Phase:          string(tpl.Phase),
		PhaseOrder:     tpl.Phase.Order(),
		IsTimeActive:   tpl.Phase.IsTimeActive(),
		StandardOutput: tpl.StandardOutput,
		OutputUnit:     tpl.OutputUnit,
		EstimatedHours: tpl.EstimatedHours,
		Recipes:        []dto.RecipeResponse{},
	}
	for _, line := range tpl.Recipes {
		resp.Recipes = append(resp.Recipes, dto.RecipeResponse{
			ID:               line.ID,
			MaterialID:       line.MaterialID,
			StandardQuantity: line.StandardQuantity,
		})
	}
	return resp
}
