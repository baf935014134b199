package gst

// InvoiceTotals totales de la factura.
type InvoiceTotals struct {
	Subtotal   float64 `json:"subtotal"`
	CGSTTotal  float64 `json:"cgst_total"`
	SGSTTotal  float64 `json:"sgst_total"`
	GrandTotal float64 `json:"grand_total"`
}

// AggregateInvoice suma las líneas ya calculadas en el orden recibido.
// La suma en coma flotante no es asociativa: reordenar las líneas puede cambiar
// los bits menos significativos del total.
func AggregateInvoice(items []LineItemCalc) InvoiceTotals {
	var t InvoiceTotals
	for _, it := range items {
		t.Subtotal += it.Amount
		t.CGSTTotal += it.CGST
		t.SGSTTotal += it.SGST
	}
	t.GrandTotal = t.Subtotal + t.CGSTTotal + t.SGSTTotal
	return t
}
