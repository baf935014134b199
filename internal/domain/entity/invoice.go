package entity

import "time"

// Estados de una factura. Toda factura calculada nace como borrador.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
)

// InvoiceTotals totales de la factura tal como se persisten o se reciben (float64).
type InvoiceTotals struct {
	Subtotal   float64
	CGSTTotal  float64
	SGSTTotal  float64
	GrandTotal float64
}

// Invoice factura de venta intra-estatal (CGST + SGST).
type Invoice struct {
	Number  string
	Date    time.Time
	DueDate *time.Time // nil = sin vencimiento
	Notes   string
	Seller  *Party
	Buyer   *Party
	Items   []InvoiceItem
	Totals  InvoiceTotals
	Status  string // ver constantes InvoiceStatus*
}

// IsIntraState indica si vendedor y comprador están en el mismo estado según su GSTIN.
// Sin ambos GSTIN se asume venta intra-estatal.
func (inv *Invoice) IsIntraState() bool {
	if inv.Seller == nil || inv.Buyer == nil {
		return true
	}
	if inv.Seller.StateCode() == "" || inv.Buyer.StateCode() == "" {
		return true
	}
	return inv.Seller.StateCode() == inv.Buyer.StateCode()
}
