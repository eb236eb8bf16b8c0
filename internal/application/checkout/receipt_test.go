package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReceipt_Formato(t *testing.T) {
	r := Receipt{
		OrderNumber: "ORD654321",
		Date:        fixedTime,
		Lines: []ReceiptLine{
			{Name: "Kurta", Price: dec("10"), Quantity: 2},
			{Name: "Dupatta", Price: dec("5.5"), Quantity: 1},
		},
		Subtotal:      dec("25.5"),
		Shipping:      dec("100"),
		Total:         dec("125.5"),
		PaymentMethod: "card",
		Address:       "12 MG Road, Pune",
	}

	want := "Thank you for your order!\n" +
		"Order ID: ORD654321\n" +
		"Date: 3/14/2025, 3:04:05 PM\n" +
		"------------------------\n" +
		"Items:\n" +
		"Kurta - ₹10.00 x 2\n" +
		"Dupatta - ₹5.50 x 1\n" +
		"------------------------\n" +
		"Subtotal: ₹25.50\n" +
		"Shipping: ₹100.00\n" +
		"Total: ₹125.50\n" +
		"Payment Method: card\n" +
		"Shipping Address: 12 MG Road, Pune\n" +
		"------------------------\n" +
		"Thank you for shopping with RAASH!\n"

	assert.Equal(t, want, FormatReceipt(r))
}

func TestFormatAmount_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "₹0.00", FormatAmount(dec("0")))
	assert.Equal(t, "₹1,234.57", FormatAmount(dec("1234.567")))
}
