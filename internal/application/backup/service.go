// Package backup copias de seguridad periódicas del banco de horas a partir de
// una vista consistente de la base de datos.
package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/repository"
)

const (
	DefaultInterval = 6 * time.Hour
	DefaultKeep     = 30
)

// Info copia almacenada.
type Info struct {
	Name      string
	Size      int64
	CreatedAt time.Time
	Employees int
	Records   int
	Users     int
}

// Store puerto de salida donde se guardan las copias. List devuelve las más recientes primero.
type Store interface {
	Save(ctx context.Context, snap *entity.Snapshot) (Info, error)
	List(ctx context.Context) ([]Info, error)
	Prune(ctx context.Context, keep int) (int, error)
}

// Config parámetros del bucle de copias.
type Config struct {
	Interval time.Duration
	Keep     int
}

// Service toma copias bajo demanda o periódicamente y conserva las Keep más recientes.
type Service struct {
	snapshots repository.SnapshotRepository
	store     Store
	cfg       Config
	log       zerolog.Logger
}

// NewService construye el servicio. Valores no positivos en cfg toman los por defecto.
func NewService(snapshots repository.SnapshotRepository, store Store, cfg Config, log zerolog.Logger) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Keep <= 0 {
		cfg.Keep = DefaultKeep
	}
	return &Service{snapshots: snapshots, store: store, cfg: cfg, log: log}
}

// RunOnce toma una vista consistente, la guarda y rota las copias antiguas.
// Un fallo de rotación no invalida la copia recién creada.
func (s *Service) RunOnce(ctx context.Context) (Info, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("backup: snapshot: %w", err)
	}
	info, err := s.store.Save(ctx, snap)
	if err != nil {
		return Info{}, fmt.Errorf("backup: guardar: %w", err)
	}
	removed, err := s.store.Prune(ctx, s.cfg.Keep)
	if err != nil {
		s.log.Warn().Err(err).Msg("rotación de copias fallida")
	} else if removed > 0 {
		s.log.Debug().Int("removed", removed).Msg("copias antiguas eliminadas")
	}
	return info, nil
}

// List copias disponibles, más recientes primero.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	return s.store.List(ctx)
}

// Run toma una copia cada Interval hasta que ctx se cancela. La primera se toma
// al cumplirse el primer intervalo, no al arrancar.
func (s *Service) Run(ctx context.Context) error {
	s.log.Info().Dur("interval", s.cfg.Interval).Int("keep", s.cfg.Keep).Msg("copias automáticas activadas")
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("copias automáticas detenidas")
			return nil
		case <-ticker.C:
			info, err := s.RunOnce(ctx)
			if err != nil {
				if ctx.Err() == nil {
					s.log.Error().Err(err).Msg("copia automática fallida")
				}
				continue
			}
			s.log.Info().Str("file", info.Name).Int64("size", info.Size).Msg("copia automática creada")
		}
	}
}
