package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/application/usecase"
)

// QualityHandler maneja las peticiones HTTP de parámetros y valores de calidad.
type QualityHandler struct {
	uc *usecase.QualityUseCase
}

// NewQualityHandler construye el handler.
func NewQualityHandler(uc *usecase.QualityUseCase) *QualityHandler {
	return &QualityHandler{uc: uc}
}

// CreateParameter godoc
// @Summary      Declarar parámetro de calidad para una fase
// @Tags         quality
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQualityParameterRequest  true  "phase, name, min/max, is_critical"
// @Success      201   {object}  dto.QualityParameterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quality/parameters [post]
func (h *QualityHandler) CreateParameter(c *fiber.Ctx) error {
	var in dto.CreateQualityParameterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateParameter(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListParameters godoc
// @Summary      Listar parámetros de calidad de una fase
// @Tags         quality
// @Produce      json
// @Param        phase  query  string  true  "Nombre de la fase del catálogo"
// @Success      200  {array}   dto.QualityParameterResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/quality/parameters [get]
func (h *QualityHandler) ListParameters(c *fiber.Ctx) error {
	out, err := h.uc.ListParameters(c.Query("phase"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecordValue godoc
// @Summary      Registrar valor medido para una instancia de fase
// @Description  El parámetro debe pertenecer a la misma fase del catálogo que
//
//	la instancia. El valor nace sin aprobar.
//
// @Tags         quality
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la instancia de fase"
// @Param        body  body  dto.RecordQualityValueRequest  true  "quality_parameter_id, value"
// @Success      201   {object}  dto.QualityValueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/phases/{id}/quality [post]
func (h *QualityHandler) RecordValue(c *fiber.Ctx) error {
	var in dto.RecordQualityValueRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordValue(c.Params("id"), userID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListValues godoc
// @Summary      Listar valores de calidad de una instancia de fase
// @Tags         quality
// @Produce      json
// @Param        id   path  string  true  "ID de la instancia de fase"
// @Success      200  {array}   dto.QualityValueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/phases/{id}/quality [get]
func (h *QualityHandler) ListValues(c *fiber.Ctx) error {
	out, err := h.uc.ListValues(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ApproveValue godoc
// @Summary      Aprobar un valor de calidad registrado
// @Tags         quality
// @Produce      json
// @Param        id   path      string  true  "ID del valor registrado"
// @Success      200  {object}  dto.QualityValueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quality/values/{id}/approve [post]
func (h *QualityHandler) ApproveValue(c *fiber.Ctx) error {
	out, err := h.uc.ApproveValue(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
