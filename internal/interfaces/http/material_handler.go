package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/application/materials"
)

// MaterialHandler maneja las peticiones HTTP de materias primas y stock.
type MaterialHandler struct {
	uc *materials.MaterialUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *materials.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar materia prima
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "code, name, unit, stock inicial, threshold"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener materia prima
// @Tags         materials
// @Produce      json
// @Param        id   path      string  true  "ID de la materia prima"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar materias primas
// @Tags         materials
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.MaterialListResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBelowThreshold godoc
// @Summary      Materias primas bajo umbral de reposición
// @Tags         materials
// @Produce      json
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/materials/below-threshold [get]
func (h *MaterialHandler) ListBelowThreshold(c *fiber.Ctx) error {
	out, err := h.uc.ListBelowThreshold(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReserveStock godoc
// @Summary      Reservar stock de una materia prima
// @Description  Mueve la cantidad de stock disponible a stock reservado de forma atómica.
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la materia prima"
// @Param        body  body  dto.StockAmountRequest  true  "amount > 0"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/reserve [post]
func (h *MaterialHandler) ReserveStock(c *fiber.Ctx) error {
	return h.stockOp(c, h.uc.ReserveStock)
}

// ReturnStock godoc
// @Summary      Devolver stock reservado
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la materia prima"
// @Param        body  body  dto.StockAmountRequest  true  "amount > 0"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/return [post]
func (h *MaterialHandler) ReturnStock(c *fiber.Ctx) error {
	return h.stockOp(c, h.uc.ReturnStock)
}

// IncreaseStock godoc
// @Summary      Ingreso de stock (compra o recepción)
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la materia prima"
// @Param        body  body  dto.StockAmountRequest  true  "amount > 0"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/increase [post]
func (h *MaterialHandler) IncreaseStock(c *fiber.Ctx) error {
	return h.stockOp(c, h.uc.IncreaseStock)
}

// ReduceStock godoc
// @Summary      Baja de stock (merma o ajuste)
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la materia prima"
// @Param        body  body  dto.StockAmountRequest  true  "amount > 0"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/reduce [post]
func (h *MaterialHandler) ReduceStock(c *fiber.Ctx) error {
	return h.stockOp(c, h.uc.ReduceStock)
}

// ToggleActive godoc
// @Summary      Activar o desactivar una materia prima
// @Tags         materials
// @Produce      json
// @Param        id   path      string  true  "ID de la materia prima"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/toggle-active [post]
func (h *MaterialHandler) ToggleActive(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActive(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MaterialHandler) stockOp(c *fiber.Ctx, op func(ctx context.Context, id string, amount decimal.Decimal) (*dto.MaterialResponse, error)) error {
	var in dto.StockAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := op(c.Context(), c.Params("id"), in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
