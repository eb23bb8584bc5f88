package backup_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/infrastructure/backup"
)

func snapshotAt(t time.Time) *entity.Snapshot {
	worked := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	return &entity.Snapshot{
		TakenAt:   t,
		Employees: []*entity.Employee{{NF: "123", Name: "Maria", Department: "RH"}},
		Records: []*entity.CreditRecord{{
			ID: "r1", EmployeeNF: "123", Name: "Maria", WorkedDate: &worked, Deadline: &deadline,
			ClockIn: "08:00", ClockOut: "12:00", Worked: "04:00", Entitlement: "08:00",
			Debited: "01:00", Balance: "07:00", DailyHours: "08:00",
		}, {
			ID: "r2", EmployeeNF: "123", Worked: "02:00", Entitlement: "04:00", Balance: "04:00",
		}},
		Users: []*entity.User{
			{ID: "u1", Username: "admin", PasswordHash: "$2a$10$hash", Role: entity.RoleAdmin, Active: true},
			{ID: "u2", Username: "maria", Email: "maria@example.org", Role: entity.RoleUser, Active: true},
		},
		ResetTokens: []*entity.ResetToken{{
			ID: "t1", UserID: "u2", Token: "abc", ExpiresAt: t.Add(24 * time.Hour), Used: true, CreatedBy: "admin",
		}},
		AlertLogs: []*entity.AlertLog{{
			ID: "l1", RecordID: "r1", AlertDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), SentAt: t,
		}},
	}
}

func TestFileStore_GuardaYLee(t *testing.T) {
	dir := t.TempDir()
	store, err := backup.NewFileStore(dir)
	require.NoError(t, err)

	taken := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	info, err := store.Save(context.Background(), snapshotAt(taken))
	require.NoError(t, err)

	assert.Equal(t, "backup_20250601_123045.000.json.zst", info.Name)
	assert.Equal(t, 1, info.Employees)
	assert.Equal(t, 2, info.Records)
	assert.Equal(t, 2, info.Users)
	assert.Positive(t, info.Size)

	got, err := store.Read(info.Name)
	require.NoError(t, err)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "2025-07-31", got.Records[0].Deadline.Format("2006-01-02"))
	assert.Nil(t, got.Records[1].WorkedDate)
	assert.Equal(t, "07:00", got.Records[0].Balance)
	assert.Equal(t, "Maria", got.Employees[0].Name)

	require.Len(t, got.Users, 2)
	assert.Equal(t, "$2a$10$hash", got.Users[0].PasswordHash)
	assert.True(t, got.Users[1].ReceivesAlerts())
	require.Len(t, got.ResetTokens, 1)
	assert.True(t, got.ResetTokens[0].Used)
	assert.Equal(t, "u2", got.ResetTokens[0].UserID)
	require.Len(t, got.AlertLogs, 1)
	assert.Equal(t, "r1", got.AlertLogs[0].RecordID)
	assert.True(t, got.AlertLogs[0].AlertDate.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))

	// no quedan temporales
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_DosCopiasEnElMismoSegundo(t *testing.T) {
	dir := t.TempDir()
	store, err := backup.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	taken := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	first, err := store.Save(ctx, snapshotAt(taken))
	require.NoError(t, err)
	second, err := store.Save(ctx, snapshotAt(taken.Add(500*time.Millisecond)))
	require.NoError(t, err)
	assert.NotEqual(t, first.Name, second.Name)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.Name, list[0].Name)

	// mismo instante exacto: no se pisa la copia existente
	_, err = store.Save(ctx, snapshotAt(taken))
	assert.Error(t, err)
	list, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestFileStore_ListaYRota(t *testing.T) {
	dir := t.TempDir()
	store, err := backup.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := store.Save(ctx, snapshotAt(base.Add(time.Duration(i)*6*time.Hour)))
		require.NoError(t, err)
	}
	// ficheros ajenos no cuentan
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notas.txt"), []byte("x"), 0o600))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, backup.FileName(base.Add(24*time.Hour)), list[0].Name, "más reciente primero")

	removed, err := store.Prune(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, backup.FileName(base.Add(12*time.Hour)), list[2].Name, "se conservan las 3 más recientes")
	assert.FileExists(t, filepath.Join(dir, "notas.txt"))
}

func TestFileStore_ReadRechazaNombresAjenos(t *testing.T) {
	store, err := backup.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Read("../etc/passwd")
	assert.Error(t, err)
	_, err = store.Read("backup_x.json.zst")
	assert.Error(t, err)
}
