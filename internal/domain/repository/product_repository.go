package repository

import "github.com/tu-usuario/cerveceria-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(p *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
}

// ProductPhaseRepository plantillas de fase por producto y sus recetas.
// ListByProduct devuelve las plantillas con sus recetas cargadas, ordenadas
// por el orden del catálogo.
type ProductPhaseRepository interface {
	Create(tpl *entity.ProductPhase) error
	GetByProductAndPhase(productID string, phase entity.Phase) (*entity.ProductPhase, error)
	ListByProduct(productID string) ([]*entity.ProductPhase, error)
	AddRecipe(r *entity.Recipe) error
	ListRecipes(productPhaseID string) ([]*entity.Recipe, error)
}
