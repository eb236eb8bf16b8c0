package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReceiptSubject asunto del correo de recibo.
const ReceiptSubject = "RAASH Order Receipt"

const receiptDateLayout = "1/2/2006, 3:04:05 PM"

// ReceiptLine producto tal como lo envió el cliente.
type ReceiptLine struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// Receipt datos del recibo de un pago.
type Receipt struct {
	OrderNumber   string
	Date          time.Time
	Lines         []ReceiptLine
	Subtotal      decimal.Decimal
	Shipping      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Address       string
}

var receiptPrinter = message.NewPrinter(language.English)

// FormatAmount formatea un importe en rupias con dos decimales y separador de miles.
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return receiptPrinter.Sprintf("₹%.2f", f)
}

// FormatReceipt arma el cuerpo de texto plano del recibo.
func FormatReceipt(r Receipt) string {
	var b strings.Builder
	sep := "------------------------\n"

	b.WriteString("Thank you for your order!\n")
	b.WriteString("Order ID: " + r.OrderNumber + "\n")
	b.WriteString("Date: " + r.Date.Format(receiptDateLayout) + "\n")
	b.WriteString(sep)
	b.WriteString("Items:\n")
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "%s - %s x %d\n", l.Name, FormatAmount(l.Price), l.Quantity)
	}
	b.WriteString(sep)
	b.WriteString("Subtotal: " + FormatAmount(r.Subtotal) + "\n")
	b.WriteString("Shipping: " + FormatAmount(r.Shipping) + "\n")
	b.WriteString("Total: " + FormatAmount(r.Total) + "\n")
	b.WriteString("Payment Method: " + r.PaymentMethod + "\n")
	b.WriteString("Shipping Address: " + r.Address + "\n")
	b.WriteString(sep)
	b.WriteString("Thank you for shopping with RAASH!\n")
	return b.String()
}
