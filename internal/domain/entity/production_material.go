package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionMaterial material efectivamente reservado para una instancia de fase.
// Distinto de la cantidad estándar de la receta: esta es la reserva real hecha
// al iniciar la fase, y lo que se devuelve al rechazar o cancelar.
type ProductionMaterial struct {
	ID                string
	ProductionPhaseID string
	MaterialID        string
	Quantity          decimal.Decimal
	CreatedAt         time.Time
}
