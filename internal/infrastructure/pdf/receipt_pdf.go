// Package pdf genera la copia PDF del recibo de pago.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: RAASH + "Order Receipt"  │  N° pedido + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ENVÍO: método de pago + dirección                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Importe                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Envío / Total                           │
//	│  FOOTER: QR con el número de pedido + agradecimiento         │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/raash-api/internal/application/checkout"
)

var _ checkout.ReceiptRenderer = (*ReceiptRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 128, Green: 24, Blue: 56}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// ReceiptRenderer implementa checkout.ReceiptRenderer usando Maroto v2.
type ReceiptRenderer struct {
	shopName string
}

// NewReceiptRenderer construye el renderer.
func NewReceiptRenderer(shopName string) *ReceiptRenderer {
	return &ReceiptRenderer{shopName: nonEmpty(shopName, "RAASH")}
}

// RenderReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptRenderer) RenderReceipt(_ context.Context, r checkout.Receipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.shopName+" Order Receipt", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(shippingRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(r.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r))

	m.AddRows(line.NewRow(3))
	m.AddRows(g.footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReceiptRenderer) headerRow(r checkout.Receipt) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Order Receipt", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDER", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(r.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+r.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func shippingRow(r checkout.Receipt) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PAYMENT & SHIPPING", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Payment Method: "+nonEmpty(r.PaymentMethod, "—"), props.Text{
				Size: 9, Top: 6,
			}),
			text.New("Shipping Address: "+nonEmpty(r.Address, "—"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Product", 6, align.Left),
		h("Unit Price", 2, align.Right),
		h("Amount", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableLineRows(lines []checkout.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		amount := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				checkout.FormatAmount(l.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				checkout.FormatAmount(amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow bloque de totales alineado a la derecha.
func totalsRow(r checkout.Receipt) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("Shipping:", 7),
			label("Total:", 13),
		),
		col.New(3).Add(
			value(checkout.FormatAmount(r.Subtotal), 1),
			value(checkout.FormatAmount(r.Shipping), 7),
			grand(checkout.FormatAmount(r.Total), 13),
		),
	)
}

// footerRow QR con el número de pedido y el agradecimiento.
func (g *ReceiptRenderer) footerRow(r checkout.Receipt) core.Row {
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(r.OrderNumber, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Thank you for shopping with "+g.shopName+"!", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 10, Left: 3, Color: colorPrimary,
			}),
			text.New("Keep this receipt for your records.", props.Text{
				Size: 8, Top: 18, Left: 3, Color: colorGray,
			}),
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
