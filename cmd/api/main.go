package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/banco-horas-api/internal/application/alert"
	"github.com/jhoicas/banco-horas-api/internal/application/auth"
	"github.com/jhoicas/banco-horas-api/internal/application/backup"
	"github.com/jhoicas/banco-horas-api/internal/application/usecase"
	infrabackup "github.com/jhoicas/banco-horas-api/internal/infrastructure/backup"
	"github.com/jhoicas/banco-horas-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/banco-horas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/banco-horas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/banco-horas-api/internal/interfaces/http"
	"github.com/jhoicas/banco-horas-api/pkg/config"
	"github.com/jhoicas/banco-horas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.RunMigrations(pool, logger.Component(log, "migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	employeeRepo := postgres.NewEmployeeRepository(pool)
	creditRepo := postgres.NewCreditRecordRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewResetTokenRepository(pool)
	alertLogRepo := postgres.NewAlertLogRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	creditUC := usecase.NewCreditUseCase(employeeRepo, creditRepo)
	lookupUC := usecase.NewLookupUseCase(employeeRepo, creditRepo, infrapdf.NewStatementGenerator(cfg.App.Name))
	authUC := auth.NewAuthUseCase(userRepo, tokenRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	if err := authUC.SeedAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, log); err != nil {
		log.Fatal().Err(err).Msg("cuenta admin inicial")
	}

	// Avisos de vencimiento por correo
	notifier := mail.NewSMTPNotifier(cfg.SMTP)
	if !cfg.SMTP.Configured() {
		log.Warn().Msg("SMTP no configurado: los avisos se registran como fallidos y se reintentan")
	}
	alertSvc := alert.NewService(creditRepo, userRepo, alertLogRepo, notifier, alert.Config{
		DaysBefore: cfg.Alert.DaysBefore,
		Interval:   cfg.Alert.Interval,
	}, logger.Component(log, "alert"))

	// Copias de seguridad
	var backupSvc *backup.Service
	if cfg.Backup.Enabled {
		store, err := infrabackup.NewFileStore(cfg.Backup.Dir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Backup.Dir).Msg("directorio de backups")
		}
		backupSvc = backup.NewService(snapshotRepo, store, backup.Config{
			Interval: cfg.Backup.Interval,
			Keep:     cfg.Backup.Keep,
		}, logger.Component(log, "backup"))
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.HTTP.SwaggerFile,
		Path:     "docs",
		Title:    "Banco de Horas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC: employeeUC,
		CreditUC:   creditUC,
		LookupUC:   lookupUC,
		AuthUC:     authUC,
		UserUC:     userUC,
		Backups:    backupSvc,
		JWTSecret:  cfg.JWT.Secret,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})
	if cfg.Alert.Enabled {
		g.Go(func() error { return alertSvc.Run(gctx) })
	}
	if backupSvc != nil {
		g.Go(func() error { return backupSvc.Run(gctx) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("aplicación finalizada con error")
	}
	log.Info().Msg("aplicación detenida")
}
