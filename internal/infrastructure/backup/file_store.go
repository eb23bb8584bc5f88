// Package backup guarda copias del banco de horas como JSON comprimido con zstd
// en un directorio local.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	appbackup "github.com/jhoicas/banco-horas-api/internal/application/backup"
	"github.com/jhoicas/banco-horas-api/internal/domain/credit"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

const (
	filePrefix = "backup_"
	fileSuffix = ".json.zst"
	stampFmt   = "20060102_150405.000"

	formatVersion = 1
)

var _ appbackup.Store = (*FileStore)(nil)

// FileStore implementa backup.Store sobre el sistema de ficheros.
type FileStore struct {
	dir string
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewFileStore crea el directorio si no existe. El encoder y el decoder de zstd
// son seguros para uso concurrente y se reutilizan entre llamadas.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("backup: crear directorio %s: %w", dir, err)
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("backup: encoder zstd: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("backup: decoder zstd: %w", err)
	}
	return &FileStore{dir: dir, enc: enc, dec: dec}, nil
}

// Save serializa la copia y la escribe de forma atómica (fichero temporal + rename).
// Nunca pisa una copia existente y relee el fichero escrito para comprobar que
// se puede restaurar; si no, lo elimina.
func (s *FileStore) Save(_ context.Context, snap *entity.Snapshot) (appbackup.Info, error) {
	raw, err := json.Marshal(toDocument(snap))
	if err != nil {
		return appbackup.Info{}, fmt.Errorf("backup: serializar: %w", err)
	}
	data := s.enc.EncodeAll(raw, nil)

	name := FileName(snap.TakenAt)
	final := filepath.Join(s.dir, name)
	if _, err := os.Stat(final); err == nil {
		return appbackup.Info{}, fmt.Errorf("backup: %s ya existe", name)
	}
	tmp, err := os.CreateTemp(s.dir, ".tmp-"+filePrefix+"*")
	if err != nil {
		return appbackup.Info{}, fmt.Errorf("backup: fichero temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return appbackup.Info{}, fmt.Errorf("backup: escribir: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return appbackup.Info{}, fmt.Errorf("backup: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		return appbackup.Info{}, fmt.Errorf("backup: renombrar: %w", err)
	}
	if err := s.verify(name, snap); err != nil {
		_ = os.Remove(final)
		return appbackup.Info{}, err
	}
	return appbackup.Info{
		Name:      name,
		Size:      int64(len(data)),
		CreatedAt: snap.TakenAt,
		Employees: len(snap.Employees),
		Records:   len(snap.Records),
		Users:     len(snap.Users),
	}, nil
}

// verify lee la copia recién escrita y compara el número de filas por tabla.
func (s *FileStore) verify(name string, want *entity.Snapshot) error {
	got, err := s.Read(name)
	if err != nil {
		return fmt.Errorf("backup: verificar %s: %w", name, err)
	}
	if len(got.Employees) != len(want.Employees) ||
		len(got.Records) != len(want.Records) ||
		len(got.Users) != len(want.Users) ||
		len(got.ResetTokens) != len(want.ResetTokens) ||
		len(got.AlertLogs) != len(want.AlertLogs) {
		return fmt.Errorf("backup: verificar %s: contenido incompleto", name)
	}
	return nil
}

// List copias del directorio, más recientes primero. El orden lo da el nombre
// (marca de tiempo fija), no la fecha de modificación.
func (s *FileStore) List(_ context.Context) ([]appbackup.Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("backup: listar: %w", err)
	}
	var out []appbackup.Info
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		taken, ok := parseFileName(e.Name())
		if !ok {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, appbackup.Info{Name: e.Name(), Size: fi.Size(), CreatedAt: taken})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

// Prune elimina las copias que sobran a partir de las keep más recientes.
func (s *FileStore) Prune(ctx context.Context, keep int) (int, error) {
	list, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	if keep < 0 {
		keep = 0
	}
	removed := 0
	for i := keep; i < len(list); i++ {
		if err := os.Remove(filepath.Join(s.dir, list[i].Name)); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("backup: eliminar %s: %w", list[i].Name, err)
		}
		removed++
	}
	return removed, nil
}

// Read carga una copia por nombre. Solo acepta nombres generados por el store.
// Save la usa para verificar cada copia antes de darla por buena.
func (s *FileStore) Read(name string) (*entity.Snapshot, error) {
	if _, ok := parseFileName(name); !ok || filepath.Base(name) != name {
		return nil, fmt.Errorf("backup: nombre inválido %q", name)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("backup: leer: %w", err)
	}
	raw, err := s.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("backup: descomprimir: %w", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("backup: decodificar: %w", err)
	}
	return doc.toSnapshot()
}

// FileName nombre de la copia tomada en t: backup_AAAAMMDD_HHMMSS.mmm.json.zst (UTC).
func FileName(t time.Time) string {
	return filePrefix + t.UTC().Format(stampFmt) + fileSuffix
}

func parseFileName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	t, err := time.Parse(stampFmt, stamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ── Formato del documento ─────────────────────────────────────────────────────

type document struct {
	Version     int               `json:"version"`
	TakenAt     time.Time         `json:"taken_at"`
	Employees   []employeeDoc     `json:"employees"`
	Records     []creditRecordDoc `json:"records"`
	Users       []userDoc         `json:"users"`
	ResetTokens []resetTokenDoc   `json:"reset_tokens"`
	AlertLogs   []alertLogDoc     `json:"alert_logs"`
}

type userDoc struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type resetTokenDoc struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type alertLogDoc struct {
	ID        string    `json:"id"`
	RecordID  string    `json:"record_id"`
	AlertDate string    `json:"alert_date"`
	SentAt    time.Time `json:"sent_at"`
}

type employeeDoc struct {
	NF         string    `json:"nf"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type creditRecordDoc struct {
	ID          string    `json:"id"`
	EmployeeNF  string    `json:"employee_nf"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Bond        string    `json:"bond"`
	WorkedDate  string    `json:"worked_date"`
	ClockIn     string    `json:"clock_in"`
	ClockOut    string    `json:"clock_out"`
	Worked      string    `json:"worked"`
	Entitlement string    `json:"entitlement"`
	Deadline    string    `json:"deadline"`
	TotalHours  string    `json:"total_hours"`
	DailyHours  string    `json:"daily_hours"`
	DaysToTake  string    `json:"days_to_take"`
	DaysTaken   string    `json:"days_taken"`
	Debited     string    `json:"debited"`
	Balance     string    `json:"balance"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDocument(snap *entity.Snapshot) document {
	doc := document{
		Version:     formatVersion,
		TakenAt:     snap.TakenAt,
		Employees:   make([]employeeDoc, 0, len(snap.Employees)),
		Records:     make([]creditRecordDoc, 0, len(snap.Records)),
		Users:       make([]userDoc, 0, len(snap.Users)),
		ResetTokens: make([]resetTokenDoc, 0, len(snap.ResetTokens)),
		AlertLogs:   make([]alertLogDoc, 0, len(snap.AlertLogs)),
	}
	for _, e := range snap.Employees {
		doc.Employees = append(doc.Employees, employeeDoc{
			NF: e.NF, Name: e.Name, Department: e.Department,
			CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
		})
	}
	for _, r := range snap.Records {
		doc.Records = append(doc.Records, creditRecordDoc{
			ID: r.ID, EmployeeNF: r.EmployeeNF, Name: r.Name, Department: r.Department, Bond: r.Bond,
			WorkedDate: credit.FormatDate(r.WorkedDate), ClockIn: r.ClockIn, ClockOut: r.ClockOut,
			Worked: r.Worked, Entitlement: r.Entitlement, Deadline: credit.FormatDate(r.Deadline),
			TotalHours: r.TotalHours, DailyHours: r.DailyHours, DaysToTake: r.DaysToTake,
			DaysTaken: r.DaysTaken, Debited: r.Debited, Balance: r.Balance, Note: r.Note,
			CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
	}
	for _, u := range snap.Users {
		doc.Users = append(doc.Users, userDoc{
			ID: u.ID, Username: u.Username, Email: u.Email, PasswordHash: u.PasswordHash,
			Role: u.Role, Active: u.Active, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
		})
	}
	for _, t := range snap.ResetTokens {
		doc.ResetTokens = append(doc.ResetTokens, resetTokenDoc{
			ID: t.ID, UserID: t.UserID, Token: t.Token, ExpiresAt: t.ExpiresAt,
			Used: t.Used, CreatedBy: t.CreatedBy, CreatedAt: t.CreatedAt,
		})
	}
	for _, l := range snap.AlertLogs {
		doc.AlertLogs = append(doc.AlertLogs, alertLogDoc{
			ID: l.ID, RecordID: l.RecordID, AlertDate: credit.FormatDate(&l.AlertDate), SentAt: l.SentAt,
		})
	}
	return doc
}

func (d document) toSnapshot() (*entity.Snapshot, error) {
	snap := &entity.Snapshot{TakenAt: d.TakenAt}
	for _, e := range d.Employees {
		snap.Employees = append(snap.Employees, &entity.Employee{
			NF: e.NF, Name: e.Name, Department: e.Department,
			CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
		})
	}
	for _, r := range d.Records {
		worked, err := optionalDate(r.WorkedDate)
		if err != nil {
			return nil, err
		}
		deadline, err := optionalDate(r.Deadline)
		if err != nil {
			return nil, err
		}
		snap.Records = append(snap.Records, &entity.CreditRecord{
			ID: r.ID, EmployeeNF: r.EmployeeNF, Name: r.Name, Department: r.Department, Bond: r.Bond,
			WorkedDate: worked, ClockIn: r.ClockIn, ClockOut: r.ClockOut,
			Worked: r.Worked, Entitlement: r.Entitlement, Deadline: deadline,
			TotalHours: r.TotalHours, DailyHours: r.DailyHours, DaysToTake: r.DaysToTake,
			DaysTaken: r.DaysTaken, Debited: r.Debited, Balance: r.Balance, Note: r.Note,
			CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
	}
	for _, u := range d.Users {
		snap.Users = append(snap.Users, &entity.User{
			ID: u.ID, Username: u.Username, Email: u.Email, PasswordHash: u.PasswordHash,
			Role: u.Role, Active: u.Active, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
		})
	}
	for _, t := range d.ResetTokens {
		snap.ResetTokens = append(snap.ResetTokens, &entity.ResetToken{
			ID: t.ID, UserID: t.UserID, Token: t.Token, ExpiresAt: t.ExpiresAt,
			Used: t.Used, CreatedBy: t.CreatedBy, CreatedAt: t.CreatedAt,
		})
	}
	for _, l := range d.AlertLogs {
		day, err := credit.ParseDate(l.AlertDate)
		if err != nil {
			return nil, err
		}
		snap.AlertLogs = append(snap.AlertLogs, &entity.AlertLog{
			ID: l.ID, RecordID: l.RecordID, AlertDate: day, SentAt: l.SentAt,
		})
	}
	return snap, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := credit.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
