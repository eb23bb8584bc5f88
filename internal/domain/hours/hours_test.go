package hours_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/banco-horas-api/internal/domain/hours"
)

// ──────────────────────────────────────────────────────────────────────────────
// Conversión minutos <-> "HH:MM"
// ──────────────────────────────────────────────────────────────────────────────

func TestToMinutes(t *testing.T) {
	cases := map[string]int{
		"08:00":    480,
		"8:05":     485,
		"125:30":   7530,
		"-01:30":   -90,
		"08:30:59": 510,
		" 09:00 ":  540,
		"":         0,
		"-":        0,
		"abc":      0,
		"8":        0,
		"08:75":    0,
		"08:x0":    0,
		"1:2:3:4":  0,
	}
	for in, want := range cases {
		assert.Equal(t, want, hours.ToMinutes(in), "ToMinutes(%q)", in)
	}
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, "00:00", hours.FromMinutes(0))
	assert.Equal(t, "09:05", hours.FromMinutes(545))
	assert.Equal(t, "130:00", hours.FromMinutes(7800))
	assert.Equal(t, "-01:30", hours.FromMinutes(-90))
}

func TestFromMinutes_InversaDeToMinutes(t *testing.T) {
	for _, m := range []int{0, 1, 59, 60, 61, 480, 1439, 99999, -1, -480} {
		assert.Equal(t, m, hours.ToMinutes(hours.FromMinutes(m)), "ida y vuelta de %d", m)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Operaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestBetween(t *testing.T) {
	assert.Equal(t, "09:00", hours.Between("08:00", "17:00"))
	assert.Equal(t, "08:00", hours.Between("22:00", "06:00"), "debe cruzar la medianoche")
	assert.Equal(t, "00:00", hours.Between("10:00", "10:00"))
	assert.Equal(t, "00:00", hours.Between("-", "17:00"))
	assert.Equal(t, "00:00", hours.Between("08:00", ""))
	assert.Equal(t, "00:00", hours.Between("basura", "17:00"))
}

func TestScale(t *testing.T) {
	assert.Equal(t, "18:00", hours.Scale("09:00", decimal.NewFromInt(2)))
	assert.Equal(t, "18:00", hours.Double("09:00"))
	assert.Equal(t, "01:07", hours.Scale("00:45", decimal.RequireFromString("1.5")), "67.5 min trunca a 67")
	assert.Equal(t, "00:00", hours.Scale("-", decimal.NewFromInt(2)))
	assert.Equal(t, "00:00", hours.Scale("", decimal.NewFromInt(2)))
}

func TestToMinutes_HorasFueraDeRango(t *testing.T) {
	assert.Equal(t, hours.MaxHours*60, hours.ToMinutes("1000000000:00"))
	assert.Equal(t, 0, hours.ToMinutes("1000000001:00"))
	assert.Equal(t, 0, hours.ToMinutes("9223372036854775807:00"))
	assert.Equal(t, 0, hours.ToMinutes("-9223372036854775807:00"))
	assert.Equal(t, "00:00", hours.Sum("153722867280912930:00", "153722867280912930:00"))
	assert.Equal(t, "01:00", hours.Sum("153722867280912930:00", "01:00"))
}

func TestSum(t *testing.T) {
	assert.Equal(t, "15:30", hours.Sum("10:00", "05:00", "00:30"))
	assert.Equal(t, "10:00", hours.Sum("10:00", "", "-", "xx", "5"))
	assert.Equal(t, "00:00", hours.Sum())
}

func TestDifference(t *testing.T) {
	assert.Equal(t, "12:00", hours.Difference("15:00", "03:00"))
	assert.Equal(t, "-02:30", hours.Difference("01:00", "03:30"))
	assert.Equal(t, "10:00", hours.Difference("10:00", "-"))
	assert.Equal(t, "-03:00", hours.Difference("", "03:00"))
}

func TestDifference_PropiedadDeMinutos(t *testing.T) {
	values := []string{"00:00", "00:01", "07:59", "08:00", "23:59", "48:30"}
	for _, a := range values {
		for _, b := range values {
			got := hours.ToMinutes(hours.Difference(a, b))
			assert.Equal(t, hours.ToMinutes(a)-hours.ToMinutes(b), got, "%s - %s", a, b)
		}
	}
}

func TestToDays(t *testing.T) {
	assert.Equal(t, "1.5", hours.ToDays("12:00", 8))
	assert.Equal(t, "1.0", hours.ToDays("08:00", hours.DefaultHoursPerDay))
	assert.Equal(t, "2.0", hours.ToDays("12:00", 6))
	assert.Equal(t, "-0.5", hours.ToDays("-04:00", 8))
	assert.Equal(t, "0.0", hours.ToDays("00:00", 8))
	assert.Equal(t, "0", hours.ToDays("-", 8))
	assert.Equal(t, "0", hours.ToDays("", 8))
	assert.Equal(t, "0", hours.ToDays("no", 8))
	assert.Equal(t, "1.0", hours.ToDays("08:00", 0), "jornada inválida usa 8h")
}

func TestIsBlank(t *testing.T) {
	assert.True(t, hours.IsBlank(""))
	assert.True(t, hours.IsBlank("  "))
	assert.True(t, hours.IsBlank("-"))
	assert.False(t, hours.IsBlank("00:00"))
}
