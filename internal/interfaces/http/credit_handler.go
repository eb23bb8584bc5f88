package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-horas-api/internal/application/dto"
	"github.com/jhoicas/banco-horas-api/internal/application/usecase"
)

// CreditHandler maneja los días trabajados (protegido).
type CreditHandler struct {
	uc *usecase.CreditUseCase
}

// NewCreditHandler construye el handler.
func NewCreditHandler(uc *usecase.CreditUseCase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar día trabajado
// @Description  Con entrada y salida calcula horas trabajadas y de derecho; con día trabajado calcula el plazo (+6 meses).
// @Tags         credits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreditRecordRequest  true  "Datos del registro"
// @Success      201   {object}  dto.CreditRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/credits [post]
func (h *CreditHandler) Create(c *fiber.Ctx) error {
	var in dto.CreditRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.EmployeeNF == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee_nf es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener registro
// @Tags         credits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.CreditRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credits/{id} [get]
func (h *CreditHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar registros (más recientes primero)
// @Tags         credits
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CreditRecordResponse
// @Router       /api/credits [get]
func (h *CreditHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByEmployee godoc
// @Summary      Registros de un servidor
// @Tags         credits
// @Security     Bearer
// @Produce      json
// @Param        nf   path  string  true  "NF del servidor"
// @Success      200  {array}   dto.CreditRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{nf}/credits [get]
func (h *CreditHandler) ListByEmployee(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmployee(c.UserContext(), c.Params("nf"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar registro
// @Description  Campos ausentes no cambian. Un día trabajado nuevo recalcula el plazo e ignora el plazo enviado.
// @Tags         credits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del registro"
// @Param        body  body  dto.CreditRecordRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.CreditRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/credits/{id} [put]
func (h *CreditHandler) Update(c *fiber.Ctx) error {
	var in dto.CreditRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro
// @Tags         credits
// @Security     Bearer
// @Param        id   path  string  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credits/{id} [delete]
func (h *CreditHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
