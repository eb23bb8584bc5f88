package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-horas-api/internal/application/auth"
	"github.com/jhoicas/banco-horas-api/internal/application/dto"
)

// AuthHandler maneja login, redefinición de contraseña y la gestión de cuentas (admin).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ResetPassword godoc
// @Summary      Redefinir contraseña con token emitido por un admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "username, token, new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Username == "" || in.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y token son requeridos"})
	}
	if err := h.uc.ResetPassword(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}

// ListUsers godoc
// @Summary      Listar cuentas
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// IssueResetToken godoc
// @Summary      Emitir token de redefinición de contraseña
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        username  path  string  true  "Nombre de acceso"
// @Success      201  {object}  dto.ResetTokenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{username}/reset-token [post]
func (h *AuthHandler) IssueResetToken(c *fiber.Ctx) error {
	out, err := h.uc.IssueResetToken(c.UserContext(), c.Params("username"), GetUsername(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
