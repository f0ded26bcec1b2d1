package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPhase plantilla de una fase del catálogo para un producto: cuánto
// produce la fase por unidad estándar y cuánto tarda. Única por (producto, fase).
type ProductPhase struct {
	ID             string
	ProductID      string
	Phase          Phase
	StandardOutput decimal.Decimal // salida estándar por unidad de producto
	OutputUnit     string          // litros, kg, unidades...
	EstimatedHours *decimal.Decimal
	Recipes        []*Recipe // requerimientos estándar de materiales
	CreatedAt      time.Time
}

// Recipe requerimiento estándar de un material para una plantilla de fase.
// Par (plantilla, material) único. StandardQuantity es por unidad de salida
// estándar de la fase.
type Recipe struct {
	ID               string
	ProductPhaseID   string
	MaterialID       string
	StandardQuantity decimal.Decimal // >= 0
	CreatedAt        time.Time
}
