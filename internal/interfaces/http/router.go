package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-horas-api/internal/application/auth"
	"github.com/jhoicas/banco-horas-api/internal/application/backup"
	"github.com/jhoicas/banco-horas-api/internal/application/usecase"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
	CreditUC   *usecase.CreditUseCase
	LookupUC   *usecase.LookupUseCase
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	Backups    *backup.Service
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Servidores
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	creditHandler := NewCreditHandler(deps.CreditUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:nf", employeeHandler.Get)
	employees.Put("/:nf", employeeHandler.Update)
	employees.Delete("/:nf", employeeHandler.Delete)
	employees.Get("/:nf/credits", creditHandler.ListByEmployee)

	// Días trabajados
	credits := protected.Group("/credits")
	credits.Post("/", creditHandler.Create)
	credits.Get("/", creditHandler.List)
	credits.Get("/:id", creditHandler.Get)
	credits.Put("/:id", creditHandler.Update)
	credits.Delete("/:id", creditHandler.Delete)

	// Consulta y estadísticas
	lookupHandler := NewLookupHandler(deps.LookupUC)
	protected.Get("/lookup/:nf", lookupHandler.Lookup)
	protected.Get("/lookup/:nf/pdf", lookupHandler.StatementPDF)
	protected.Get("/statistics", lookupHandler.Statistics)

	// Administración (solo admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	admin.Get("/users", authHandler.ListUsers)
	admin.Post("/users", userHandler.Create)
	admin.Put("/users/:username", userHandler.Update)
	admin.Post("/users/:username/reset-token", authHandler.IssueResetToken)

	if deps.Backups != nil {
		backups := protected.Group("/backups", RequireRole(entity.RoleAdmin))
		backupHandler := NewBackupHandler(deps.Backups)
		backups.Post("/", backupHandler.Create)
		backups.Get("/", backupHandler.List)
	}
}
