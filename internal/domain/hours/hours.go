// Package hours implementa la aritmética de duraciones en formato textual "HH:MM"
// usada por el banco de horas.
//
// Todas las funciones son tolerantes: un valor vacío, el marcador "-" o un texto
// que no se pueda interpretar cuenta como cero y nunca produce error. Los datos
// de origen se cargan a mano y suelen venir incompletos.
package hours

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxHours mayor cantidad de horas interpretable; un valor por encima cuenta
	// como no interpretable y las sumas de muchos valores no desbordan int.
	MaxHours = 1_000_000_000

	// Zero es la duración nula en formato textual.
	Zero = "00:00"
	// Placeholder es el marcador de "sin valor" usado en las planillas.
	Placeholder = "-"
	// DefaultHoursPerDay jornada estándar (8h) para convertir horas en días.
	DefaultHoursPerDay = 8

	minutesPerDay = 24 * 60
)

// IsBlank indica si el valor no aporta duración: vacío, espacios o "-".
func IsBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == Placeholder
}

// ToMinutes convierte "H:MM" (horas sin límite, minutos 00-59, segundos
// opcionales que se descartan, signo "-" opcional) a minutos. Devuelve 0 si el
// valor está vacío o no se puede interpretar.
func ToMinutes(s string) int {
	m, ok := parse(s)
	if !ok {
		return 0
	}
	return m
}

// FromMinutes es la inversa de ToMinutes: "HH:MM" con prefijo "-" si es negativo.
func FromMinutes(m int) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}

// Between calcula fin - inicio para dos horas de reloj. Si el fin es menor que
// el inicio se asume que la jornada cruzó la medianoche.
func Between(start, end string) string {
	s, ok1 := parse(start)
	e, ok2 := parse(end)
	if !ok1 || !ok2 || s < 0 || e < 0 {
		return Zero
	}
	if e < s {
		e += minutesPerDay
	}
	return FromMinutes(e - s)
}

// Scale multiplica una duración por un factor (entero o fraccionario),
// truncando a minutos enteros.
func Scale(value string, factor decimal.Decimal) string {
	m, ok := parse(value)
	if !ok {
		return Zero
	}
	return FromMinutes(int(decimal.NewFromInt(int64(m)).Mul(factor).IntPart()))
}

// Double es el atajo para la regla de horas de derecho (2x lo trabajado).
func Double(value string) string {
	return Scale(value, decimal.NewFromInt(2))
}

// Sum suma una secuencia de duraciones ignorando las que no se pueden interpretar.
func Sum(values ...string) string {
	return FromMinutes(SumMinutes(values...))
}

// SumMinutes igual que Sum pero devuelve minutos.
func SumMinutes(values ...string) int {
	total := 0
	for _, v := range values {
		total += ToMinutes(v)
	}
	return total
}

// Difference devuelve a - b con signo ("-HH:MM" cuando es negativo).
func Difference(a, b string) string {
	return FromMinutes(ToMinutes(a) - ToMinutes(b))
}

// ToDays convierte una duración a días de hoursPerDay horas, con un decimal.
// Devuelve "0" si el valor está vacío o no se puede interpretar.
func ToDays(value string, hoursPerDay int) string {
	m, ok := parse(value)
	if !ok {
		return "0"
	}
	if hoursPerDay <= 0 {
		hoursPerDay = DefaultHoursPerDay
	}
	return decimal.NewFromInt(int64(m)).
		Div(decimal.NewFromInt(int64(hoursPerDay * 60))).
		StringFixed(1)
}

// parse es el único punto de interpretación de "H:MM[:SS]".
func parse(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if IsBlank(s) {
		return 0, false
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	h, ok := digits(parts[0])
	if !ok || h > MaxHours {
		return 0, false
	}
	m, ok := digits(parts[1])
	if !ok || len(parts[1]) > 2 || m > 59 {
		return 0, false
	}
	if len(parts) == 3 {
		if _, ok := digits(parts[2]); !ok {
			return 0, false
		}
	}
	total := h*60 + m
	if neg {
		total = -total
	}
	return total, true
}

func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
