// Package pdf genera el extracto imprimible del banco de horas de un servidor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Banco de Horas          │  NF + fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SERVIDOR: Nombre / Setor                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Día | Entrada | Salida | Trab. | Derecho | Desc. ... │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Derecho / Descontado / Saldo / Días disponibles    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/banco-horas-api/internal/application/usecase"
	"github.com/jhoicas/banco-horas-api/internal/domain/credit"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

const displayDate = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.StatementRenderer = (*StatementGenerator)(nil)

// StatementGenerator implementa usecase.StatementRenderer usando Maroto v2.
type StatementGenerator struct {
	org string
}

// NewStatementGenerator construye el generador; org aparece en la cabecera.
func NewStatementGenerator(org string) *StatementGenerator {
	return &StatementGenerator{org: org}
}

// RenderStatement genera el PDF y devuelve sus bytes.
func (g *StatementGenerator) RenderStatement(_ context.Context, st *usecase.Statement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Banco de Horas - "+st.Employee.Name, true).
		WithAuthor(g.org, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.org, st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRow(st.Employee))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRecordRows(st.Records)...)
	if len(st.Records) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhum registro para este servidor.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(st.Summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(org string, st *usecase.Statement) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("BANCO DE HORAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(org, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("NF "+st.Employee.NF, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Emitido em: "+st.GeneratedAt.Format(displayDate+" 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func employeeRow(e *entity.Employee) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SERVIDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(e.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Setor: "+nonEmpty(e.Department, "-"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

type column struct {
	label string
	size  int
}

var columns = []column{
	{"Dia", 2}, {"Entrada", 1}, {"Saída", 1}, {"Trab.", 1}, {"Direito", 2},
	{"Desc.", 1}, {"Saldo", 2}, {"Prazo", 2},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center,
			Color: colorPrimary, Top: 2,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableRecordRows(records []*entity.CreditRecord) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, r := range records {
		values := []string{
			formatDate(r.WorkedDate), r.ClockIn, r.ClockOut, r.Worked, r.Entitlement,
			r.Debited, r.Balance, formatDate(r.Deadline),
		}
		cols := make([]core.Col, 0, len(columns))
		for i, c := range columns {
			cols = append(cols, col.New(c.size).Add(text.New(nonEmpty(values[i], "-"), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

func totalsRow(s credit.Summary) core.Row {
	label := func(v string, top float64) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(v string, top float64) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	balance := s.Balance()
	balanceProps := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 13, Color: colorPrimary}
	if s.Negative() {
		balance = "-" + balance
		balanceProps.Color = colorRed
	}
	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Horas de direito:", 1),
			label("Horas descontadas:", 7),
			label("Saldo:", 13),
			label("Dias disponíveis:", 19),
		),
		col.New(3).Add(
			value(s.Entitlement(), 1),
			value(s.Debited(), 7),
			text.New(balance, balanceProps),
			value(s.AvailableDays.StringFixed(2), 19),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(displayDate)
}
