// Package pdf implementa los archivos descargables de reportes
// (libro de movimientos, stock actual y requerimiento) usando Maroto v2.
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
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/reports"
)

var _ reports.ReportFileGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa reports.ReportFileGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func titleRow(title, subtitle string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(subtitle, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
	)
}

func headerCell(size int, label string) core.Col {
	return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8}))
}

func cell(size int, value string) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8}))
}

// GenerateMovementLog exporta el libro completo de movimientos, en orden de
// inserción, con los metadatos desnormalizados de cada fila.
func (g *MarotoReportGenerator) GenerateMovementLog(_ context.Context, movements []dto.MovementResponse) ([]byte, error) {
	m := newDocument("Movimientos")
	m.AddRows(titleRow("MOVIMIENTOS DE INVENTARIO",
		fmt.Sprintf("Generado: %s | %d movimientos", time.Now().Format("2006-01-02 15:04"), len(movements))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(6).Add(
		headerCell(1, "ID"),
		headerCell(3, "Fecha"),
		headerCell(3, "Producto"),
		headerCell(2, "Categoría"),
		headerCell(1, "Unidad"),
		headerCell(1, "Cantidad"),
		headerCell(1, "Tipo"),
	))
	for _, mov := range movements {
		m.AddRows(row.New(5).Add(
			cell(1, fmt.Sprintf("%d", mov.ID)),
			cell(3, mov.Date.Format("2006-01-02 15:04:05")),
			cell(3, mov.ProductName),
			cell(2, mov.Category),
			cell(1, mov.Unit),
			cell(1, fmt.Sprintf("%d", mov.Quantity)),
			cell(1, mov.Kind),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar movimientos: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateStockSnapshot exporta el stock actual (filas ya filtradas a > 0 y
// ordenadas por producto por el caso de uso).
func (g *MarotoReportGenerator) GenerateStockSnapshot(_ context.Context, rows []dto.StockRowDTO) ([]byte, error) {
	m := newDocument("Stock Actual")
	m.AddRows(titleRow("STOCK ACTUAL",
		fmt.Sprintf("Generado: %s", time.Now().Format("2006-01-02 15:04"))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(6).Add(
		headerCell(9, "Producto"),
		headerCell(3, "Stock"),
	))
	for _, r := range rows {
		m.AddRows(row.New(5).Add(
			cell(9, r.Product),
			cell(3, fmt.Sprintf("%d", r.Stock)),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar stock: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateRequirementPlan exporta el plan de requerimientos con su encabezado:
// número, solicitante y fecha.
func (g *MarotoReportGenerator) GenerateRequirementPlan(_ context.Context, number, requester string, date time.Time, rows []dto.PlanRowDTO) ([]byte, error) {
	m := newDocument("Requerimiento " + number)
	m.AddRows(row.New(18).Add(
		col.New(12).Add(
			text.New("REQUERIMIENTO N° "+number, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Solicitante: "+requester, props.Text{Size: 9, Top: 9, Color: colorGray}),
			text.New("Fecha: "+date.Format("2006-01-02 15:04"), props.Text{Size: 9, Top: 13, Color: colorGray}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(6).Add(
		headerCell(3, "Producto"),
		headerCell(2, "Categoría"),
		headerCell(1, "Unidad"),
		headerCell(2, "Stock"),
		headerCell(2, "Cantidad requerida"),
		headerCell(2, "Cantidad a solicitar"),
	))
	for _, r := range rows {
		m.AddRows(row.New(5).Add(
			cell(3, r.Product),
			cell(2, r.Category),
			cell(1, r.Unit),
			cell(2, fmt.Sprintf("%d", r.Stock)),
			cell(2, fmt.Sprintf("%d", r.Requested)),
			cell(2, fmt.Sprintf("%d", r.ToAcquire)),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar requerimiento: %w", err)
	}
	return doc.GetBytes(), nil
}
