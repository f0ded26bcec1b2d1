package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest entrada para registrar una materia prima (intake inicial).
type CreateMaterialRequest struct {
	Code      string          `json:"code" validate:"required,min=1,max=50"`
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Supplier  string          `json:"supplier"`
	Unit      string          `json:"unit" validate:"required"`
	Stock     decimal.Decimal `json:"stock"`
	Threshold decimal.Decimal `json:"threshold"`
}

// StockAmountRequest cantidad para operaciones de stock (reservar, devolver, aumentar, reducir).
type StockAmountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// MaterialResponse salida de una materia prima.
type MaterialResponse struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Supplier         string          `json:"supplier"`
	Unit             string          `json:"unit"`
	Stock            decimal.Decimal `json:"stock"`
	ReservedStock    decimal.Decimal `json:"reserved_stock"`
	Threshold        decimal.Decimal `json:"threshold"`
	IsBelowThreshold bool            `json:"is_below_threshold"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// MaterialListResponse lista paginada de materias primas.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
