// Package pdf genera la tarjeta de presentación imprimible de un empleado.
//
// Layout (A4, parte superior):
//
//	┌──────────────────────────────────────────────┐
//	│  EMPRESA                                     │
//	│  ──────────────────────────────────────────  │
//	│  Nombre               │                      │
//	│  Cargo                │        [ QR ]        │
//	│  Tel / WhatsApp       │                      │
//	│  Email / Web          │                      │
//	│  ──────────────────────────────────────────  │
//	│  URL pública de la tarjeta                   │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usecase"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

var _ usecase.CardPDFGenerator = (*CardPDFGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 17, Green: 94, Blue: 89}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CardPDFGenerator implementa usecase.CardPDFGenerator usando Maroto v2.
type CardPDFGenerator struct{}

// NewCardPDFGenerator construye el generador.
func NewCardPDFGenerator() *CardPDFGenerator { return &CardPDFGenerator{} }

// GenerateCardPDF genera el PDF y devuelve sus bytes. cardURL se codifica en el QR.
func (g *CardPDFGenerator) GenerateCardPDF(
	_ context.Context,
	employee *entity.Employee,
	company *entity.Company,
	cardURL string,
) ([]byte, error) {
	if employee == nil || company == nil {
		return nil, fmt.Errorf("pdf: empleado y empresa son obligatorios")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Tarjeta de "+employee.Name, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(companyRow(company))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))
	m.AddRows(bodyRow(employee, cardURL))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(cardURL))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar tarjeta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func companyRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func bodyRow(e *entity.Employee, cardURL string) core.Row {
	return row.New(55).Add(
		col.New(7).Add(
			text.New(e.Name, props.Text{Style: fontstyle.Bold, Size: 16, Top: 4}),
			text.New(nonEmpty(e.JobTitle, " "), props.Text{Size: 11, Top: 13, Color: colorGray}),
			text.New(contactLine("Tel", e.Phone, "WhatsApp", e.WhatsApp), props.Text{Size: 9, Top: 24}),
			text.New(contactLine("Email", e.Email, "Web", e.Website), props.Text{Size: 9, Top: 31}),
		),
		col.New(5).Add(code.NewQr(cardURL, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

func footerRow(cardURL string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(cardURL, props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// contactLine une dos datos de contacto omitiendo los vacíos.
// Ej: ("Tel", "300", "WhatsApp", "") -> "Tel: 300"
func contactLine(labelA, a, labelB, b string) string {
	switch {
	case a != "" && b != "":
		return fmt.Sprintf("%s: %s   |   %s: %s", labelA, a, labelB, b)
	case a != "":
		return labelA + ": " + a
	case b != "":
		return labelB + ": " + b
	default:
		return " "
	}
}
