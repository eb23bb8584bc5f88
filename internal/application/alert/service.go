// Package alert avisa por correo de los créditos de horas que están a un número
// fijo de días de su plazo máximo. Cada registro genera como mucho un lote de
// avisos por día de calendario (UTC).
package alert

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/banco-horas-api/internal/domain/credit"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/repository"
)

// DefaultDaysBefore días antes del plazo en que se avisa.
const DefaultDaysBefore = 30

// DefaultInterval periodo entre comprobaciones.
const DefaultInterval = time.Hour

// Notifier puerto de salida: entrega un aviso a un destinatario.
type Notifier interface {
	Send(ctx context.Context, to string, msg Message) error
}

// Config parámetros del programador.
type Config struct {
	DaysBefore int
	Interval   time.Duration
}

// RunReport resultado de una pasada.
type RunReport struct {
	Recipients int // tamaño de la lista de distribución
	Candidates int // registros con plazo
	Due        int // registros exactamente a DaysBefore días
	Skipped    int // ya avisados hoy
	Alerted    int // lote completo enviado y registrado
	Failed     int // algún envío falló; se reintentará en la próxima pasada
}

// Service programador de avisos de vencimiento.
type Service struct {
	records  repository.CreditRecordRepository
	users    repository.UserRepository
	logs     repository.AlertLogRepository
	notifier Notifier
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time
}

// NewService construye el programador. Valores no positivos en cfg toman los por defecto.
func NewService(
	records repository.CreditRecordRepository,
	users repository.UserRepository,
	logs repository.AlertLogRepository,
	notifier Notifier,
	cfg Config,
	log zerolog.Logger,
) *Service {
	if cfg.DaysBefore <= 0 {
		cfg.DaysBefore = DefaultDaysBefore
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &Service{
		records:  records,
		users:    users,
		logs:     logs,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// WithClock sustituye el reloj (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Run ejecuta una pasada inmediata y luego una por intervalo hasta que ctx se cancela.
// Los errores de una pasada se registran y no detienen el bucle.
func (s *Service) Run(ctx context.Context) error {
	s.log.Info().Dur("interval", s.cfg.Interval).Int("days_before", s.cfg.DaysBefore).Msg("programador de avisos iniciado")
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		s.runLogged(ctx)
		select {
		case <-ctx.Done():
			s.log.Info().Msg("programador de avisos detenido")
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Service) runLogged(ctx context.Context) {
	report, err := s.RunOnce(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Error().Err(err).Msg("pasada de avisos fallida")
		}
		return
	}
	if report.Due > 0 {
		s.log.Info().
			Int("due", report.Due).
			Int("alerted", report.Alerted).
			Int("skipped", report.Skipped).
			Int("failed", report.Failed).
			Msg("pasada de avisos completada")
	}
}

// RunOnce realiza una pasada completa:
//  1. hoy = fecha actual en UTC;
//  2. registros con plazo;
//  3. lista de distribución (cuentas activas de rol user con email), calculada una vez;
//  4. sin destinatarios no hace nada;
//  5. solo registros con plazo exactamente a DaysBefore días;
//  6. registros ya avisados hoy se saltan;
//  7. se envía a cada destinatario y solo si todos los envíos salen bien se
//     registra el aviso; un fallo se registra en el log y la pasada sigue.
func (s *Service) RunOnce(ctx context.Context) (RunReport, error) {
	var rep RunReport
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	records, err := s.records.ListWithDeadline(ctx)
	if err != nil {
		return rep, err
	}
	rep.Candidates = len(records)

	users, err := s.users.ListAlertRecipients(ctx)
	if err != nil {
		return rep, err
	}
	recipients := make([]string, 0, len(users))
	for _, u := range users {
		if u.ReceivesAlerts() {
			recipients = append(recipients, u.Email)
		}
	}
	rep.Recipients = len(recipients)
	if len(recipients) == 0 {
		return rep, nil
	}

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if r.Deadline == nil || credit.DaysUntil(*r.Deadline, today) != s.cfg.DaysBefore {
			continue
		}
		rep.Due++

		sent, err := s.logs.Exists(ctx, r.ID, today)
		if err != nil {
			s.log.Error().Err(err).Str("record_id", r.ID).Msg("consultar registro de avisos")
			rep.Failed++
			continue
		}
		if sent {
			rep.Skipped++
			continue
		}

		if !s.notify(ctx, r, recipients) {
			rep.Failed++
			continue
		}
		if err := s.logs.Create(ctx, &entity.AlertLog{
			ID:        uuid.New().String(),
			RecordID:  r.ID,
			AlertDate: today,
			SentAt:    now,
		}); err != nil {
			s.log.Error().Err(err).Str("record_id", r.ID).Msg("registrar aviso enviado")
			rep.Failed++
			continue
		}
		rep.Alerted++
	}
	return rep, nil
}

// notify envía el aviso a todos; devuelve true solo si todos los envíos salieron bien.
func (s *Service) notify(ctx context.Context, r *entity.CreditRecord, recipients []string) bool {
	msg := NewMessage(r, s.cfg.DaysBefore)
	ok := true
	for _, to := range recipients {
		if err := s.notifier.Send(ctx, to, msg); err != nil {
			s.log.Error().Err(err).Str("record_id", r.ID).Str("to", to).Msg("envío de aviso fallido")
			ok = false
		}
	}
	return ok
}
