package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-horas-api/internal/application/backup"
	"github.com/jhoicas/banco-horas-api/internal/application/dto"
)

// BackupHandler copia manual y listado de copias (solo admin).
type BackupHandler struct {
	svc *backup.Service
}

// NewBackupHandler construye el handler.
func NewBackupHandler(svc *backup.Service) *BackupHandler {
	return &BackupHandler{svc: svc}
}

// Create godoc
// @Summary      Crear copia de seguridad
// @Tags         backups
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.BackupResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/backups [post]
func (h *BackupHandler) Create(c *fiber.Ctx) error {
	info, err := h.svc.RunOnce(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBackupResponse(info))
}

// List godoc
// @Summary      Listar copias (más recientes primero)
// @Tags         backups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BackupResponse
// @Router       /api/backups [get]
func (h *BackupHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.BackupResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBackupResponse(b))
	}
	return c.JSON(out)
}

func toBackupResponse(b backup.Info) dto.BackupResponse {
	return dto.BackupResponse{
		Name:      b.Name,
		Size:      b.Size,
		CreatedAt: b.CreatedAt,
		Employees: b.Employees,
		Records:   b.Records,
		Users:     b.Users,
	}
}
