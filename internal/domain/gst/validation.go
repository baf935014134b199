// Package gst contiene validaciones de dominio sobre facturas GST ya calculadas
// (por ejemplo, totales persistidos). Utiliza el motor de cálculo de pkg/gst.
package gst

import (
	"errors"
	"fmt"

	"github.com/jhoicas/gst-invoice-api/internal/domain/entity"
	"github.com/jhoicas/gst-invoice-api/pkg/gst"

	"github.com/shopspring/decimal"
)

// ErrTotalsMismatch agrupa diferencias entre los importes guardados y los recalculados.
var ErrTotalsMismatch = errors.New("los importes no coinciden con el recálculo")

// Recompute recalcula cada línea y los totales a partir de cantidad, precio y tasa.
// Devuelve los ítems con los importes recalculados (mismo orden) y sus totales.
func Recompute(items []entity.InvoiceItem) ([]entity.InvoiceItem, entity.InvoiceTotals) {
	out := make([]entity.InvoiceItem, len(items))
	calcs := make([]gst.LineItemCalc, len(items))
	for i, it := range items {
		c := gst.CalculateLineItem(it.Quantity, it.Rate, it.GSTRate)
		calcs[i] = c
		it.Amount, it.CGST, it.SGST, it.Total = c.Amount, c.CGST, c.SGST, c.Total
		out[i] = it
	}
	t := gst.AggregateInvoice(calcs)
	return out, entity.InvoiceTotals{
		Subtotal:   t.Subtotal,
		CGSTTotal:  t.CGSTTotal,
		SGSTTotal:  t.SGSTTotal,
		GrandTotal: t.GrandTotal,
	}
}

// ValidateTotals compara, redondeado a paise, lo guardado en cada línea y en los
// totales con lo que produce el motor. También exige CGST == SGST en cada línea guardada.
func ValidateTotals(items []entity.InvoiceItem, stored entity.InvoiceTotals) error {
	var errs []error

	if len(items) == 0 {
		errs = append(errs, errors.New("la factura debe tener al menos un ítem"))
	}

	recomputed, totals := Recompute(items)
	for i, it := range items {
		want := recomputed[i]
		line := fmt.Sprintf("items[%d]", i)
		if !paiseEqual(it.CGST, it.SGST) {
			errs = append(errs, fmt.Errorf("%s: cgst (%s) y sgst (%s) deben ser iguales", line, paise(it.CGST), paise(it.SGST)))
		}
		errs = appendMismatch(errs, line+".amount", it.Amount, want.Amount)
		errs = appendMismatch(errs, line+".cgst", it.CGST, want.CGST)
		errs = appendMismatch(errs, line+".sgst", it.SGST, want.SGST)
		errs = appendMismatch(errs, line+".total", it.Total, want.Total)
	}

	errs = appendMismatch(errs, "totals.subtotal", stored.Subtotal, totals.Subtotal)
	errs = appendMismatch(errs, "totals.cgst_total", stored.CGSTTotal, totals.CGSTTotal)
	errs = appendMismatch(errs, "totals.sgst_total", stored.SGSTTotal, totals.SGSTTotal)
	errs = appendMismatch(errs, "totals.grand_total", stored.GrandTotal, totals.GrandTotal)

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrTotalsMismatch}, errs...)...)
	}
	return nil
}

// MismatchError diferencia puntual entre un importe guardado y el recalculado.
type MismatchError struct {
	Field    string
	Stored   decimal.Decimal
	Expected decimal.Decimal
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: guardado %s, esperado %s", e.Field, e.Stored.StringFixed(2), e.Expected.StringFixed(2))
}

func appendMismatch(errs []error, field string, stored, expected float64) []error {
	if paiseEqual(stored, expected) {
		return errs
	}
	return append(errs, &MismatchError{Field: field, Stored: gst.RoundPaise(stored), Expected: gst.RoundPaise(expected)})
}

func paiseEqual(a, b float64) bool {
	return gst.RoundPaise(a).Equal(gst.RoundPaise(b))
}

func paise(v float64) string {
	return gst.RoundPaise(v).StringFixed(2)
}
