package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/raash-api/internal/application/checkout"
)

func TestRenderReceipt_GeneraPDF(t *testing.T) {
	r := checkout.Receipt{
		OrderNumber: "ORD123456",
		Date:        time.Date(2025, 3, 14, 15, 4, 5, 0, time.UTC),
		Lines: []checkout.ReceiptLine{
			{Name: "Silk Kurta", Price: decimal.RequireFromString("10"), Quantity: 2},
		},
		Subtotal:      decimal.RequireFromString("20"),
		Shipping:      decimal.RequireFromString("100"),
		Total:         decimal.RequireFromString("120"),
		PaymentMethod: "card",
		Address:       "12 MG Road, Pune",
	}

	doc, err := NewReceiptRenderer("").RenderReceipt(context.Background(), r)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "el documento debe ser un PDF")
}
