// Package pdf genera la representación en PDF del catálogo de un bucket:
// cabecera con nombre/capacidad, tabla de medicamentos con precios y pie con
// fecha de generación. Página A4.
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

	"github.com/tu-usuario/medimarket-api/internal/application/ports"
	"github.com/tu-usuario/medimarket-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// MarotoCatalogGenerator implementa ports.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

// GenerateBucketCatalog genera el PDF y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateBucketCatalog(
	_ context.Context,
	bucket *entity.Bucket,
	medicines []*entity.MedicineSummary,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo "+bucket.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bucket))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, med := range medicines {
		m.AddRows(medicineRow(med))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(medicines)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del bucket (izq) y capacidad declarada (der).
func headerRow(bucket *entity.Bucket) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(bucket.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Creado: %s", bucket.CreatedAt.Format("02/01/2006")), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Capacidad: "+bucket.Capacity, props.Text{
				Size: 9, Top: 2, Align: align.Right,
			}),
			text.New(fmt.Sprintf("Medicamentos declarados: %d", bucket.NumberMedicines), props.Text{
				Size: 8, Top: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}
	headerRight := header
	headerRight.Align = align.Right
	return row.New(8).Add(
		col.New(4).Add(text.New("Nombre", header)),
		col.New(3).Add(text.New("Composición", header)),
		col.New(2).Add(text.New("Presentación", header)),
		col.New(1).Add(text.New("MRP", headerRight)),
		col.New(1).Add(text.New("Desc. %", headerRight)),
		col.New(1).Add(text.New("Precio", headerRight)),
	)
}

func medicineRow(m *entity.MedicineSummary) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := cell
	cellRight.Align = align.Right
	return row.New(6).Add(
		col.New(4).Add(text.New(m.Name, cell)),
		col.New(3).Add(text.New(m.SaltComposition, cell)),
		col.New(2).Add(text.New(m.Packaging, cell)),
		col.New(1).Add(text.New(m.MRP.StringFixed(2), cellRight)),
		col.New(1).Add(text.New(m.DiscountPercent.StringFixed(2), cellRight)),
		col.New(1).Add(text.New(m.SellingPrice.StringFixed(2), cellRight)),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("%d medicamentos en catálogo", total), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}
