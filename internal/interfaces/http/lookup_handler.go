package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-horas-api/internal/application/usecase"
)

// LookupHandler consulta por NF, extracto en PDF y estadísticas (protegido).
type LookupHandler struct {
	uc *usecase.LookupUseCase
}

// NewLookupHandler construye el handler.
func NewLookupHandler(uc *usecase.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// Lookup godoc
// @Summary      Consultar banco de horas de un servidor
// @Tags         lookup
// @Security     Bearer
// @Produce      json
// @Param        nf   path  string  true  "NF del servidor"
// @Success      200  {object}  dto.LookupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lookup/{nf} [get]
func (h *LookupHandler) Lookup(c *fiber.Ctx) error {
	out, err := h.uc.Lookup(c.UserContext(), c.Params("nf"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StatementPDF godoc
// @Summary      Extracto imprimible del banco de horas
// @Tags         lookup
// @Security     Bearer
// @Produce      application/pdf
// @Param        nf   path  string  true  "NF del servidor"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lookup/{nf}/pdf [get]
func (h *LookupHandler) StatementPDF(c *fiber.Ctx) error {
	nf := c.Params("nf")
	out, err := h.uc.StatementPDF(c.UserContext(), nf)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="banco_horas_`+nf+`.pdf"`)
	return c.Send(out)
}

// Statistics godoc
// @Summary      Estadísticas globales
// @Tags         lookup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatisticsResponse
// @Router       /api/statistics [get]
func (h *LookupHandler) Statistics(c *fiber.Ctx) error {
	out, err := h.uc.Statistics(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
