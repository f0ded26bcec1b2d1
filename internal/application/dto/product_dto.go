package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	IsAlcoholic bool   `json:"is_alcoholic"`
}

// CreateProductPhaseRequest entrada para declarar una plantilla de fase del producto.
type CreateProductPhaseRequest struct {
	Phase          string           `json:"phase" validate:"required"`
	StandardOutput decimal.Decimal  `json:"standard_output"`
	OutputUnit     string           `json:"output_unit" validate:"required"`
	EstimatedHours *decimal.Decimal `json:"estimated_hours"`
}

// AddRecipeRequest entrada para agregar una línea de receta a una plantilla de fase.
type AddRecipeRequest struct {
	MaterialID       string          `json:"material_id" validate:"required"`
	StandardQuantity decimal.Decimal `json:"standard_quantity"`
}

// RecipeResponse línea de receta de una plantilla de fase.
type RecipeResponse struct {
	ID               string          `json:"id"`
	MaterialID       string          `json:"material_id"`
	StandardQuantity decimal.Decimal `json:"standard_quantity"`
}

// ProductPhaseResponse plantilla de fase con sus recetas.
type ProductPhaseResponse struct {
	ID             string           `json:"id"`
	Phase          string           `json:"phase"`
	PhaseOrder     int              `json:"phase_order"`
	IsTimeActive   bool             `json:"is_time_active"`
	StandardOutput decimal.Decimal  `json:"standard_output"`
	OutputUnit     string           `json:"output_unit"`
	EstimatedHours *decimal.Decimal `json:"estimated_hours,omitempty"`
	Recipes        []RecipeResponse `json:"recipes"`
}

// ProductResponse salida de un producto con sus fases aplicables.
type ProductResponse struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	IsAlcoholic      bool                   `json:"is_alcoholic"`
	IsActive         bool                   `json:"is_active"`
	ApplicablePhases []string               `json:"applicable_phases"`
	Phases           []ProductPhaseResponse `json:"phases,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
