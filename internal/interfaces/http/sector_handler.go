package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/application/usecase"
)

// SectorHandler maneja las peticiones HTTP de sectores de planta.
type SectorHandler struct {
	uc *usecase.SectorUseCase
}

// NewSectorHandler construye el handler.
func NewSectorHandler(uc *usecase.SectorUseCase) *SectorHandler {
	return &SectorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sector de planta
// @Tags         sectors
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSectorRequest  true  "name, phase (afinidad opcional), production_capacity"
// @Success      201   {object}  dto.SectorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sectors [post]
func (h *SectorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSectorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener sector
// @Tags         sectors
// @Produce      json
// @Param        id   path      string  true  "ID del sector"
// @Success      200  {object}  dto.SectorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sectors/{id} [get]
func (h *SectorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar sectores
// @Tags         sectors
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.SectorListResponse
// @Router       /api/sectors [get]
func (h *SectorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// IncreaseProduction godoc
// @Summary      Aumentar la carga de producción de un sector
// @Tags         sectors
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del sector"
// @Param        body  body  dto.StockAmountRequest  true  "amount > 0"
// @Success      200   {object}  dto.SectorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sectors/{id}/increase-production [post]
func (h *SectorHandler) IncreaseProduction(c *fiber.Ctx) error {
	var in dto.StockAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.IncreaseProduction(c.Context(), c.Params("id"), in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DecreaseProduction godoc
// @Summary      Reducir la carga de producción de un sector
// @Description  La carga nunca baja de cero; el excedente se descarta.
// @Tags         sectors
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del sector"
// @Param        body  body  dto.StockAmountRequest  true  "amount > 0"
// @Success      200   {object}  dto.SectorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sectors/{id}/decrease-production [post]
func (h *SectorHandler) DecreaseProduction(c *fiber.Ctx) error {
	var in dto.StockAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.DecreaseProduction(c.Context(), c.Params("id"), in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
