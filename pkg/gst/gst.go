// Package gst contiene el motor de cálculo del GST (Goods and Services Tax, India)
// para facturas de venta intra-estatales: impuesto por línea dividido en CGST y SGST,
// totales de la factura y el importe en letras con la numeración india (lakh/crore).
//
// Todas las funciones son puras y deterministas. Los cálculos usan float64 sin
// redondeos intermedios; el redondeo a paise ocurre solo al presentar (ver RoundPaise).
package gst

// Rates son las tasas de GST estándar (porcentaje) que ofrece la aplicación.
var Rates = []float64{0, 5, 12, 18, 28}

// IsStandardRate indica si rate pertenece al conjunto de tasas estándar.
// El calculador no lo exige: la validación corresponde a la capa que recibe la petición.
func IsStandardRate(rate float64) bool {
	for _, r := range Rates {
		if r == rate {
			return true
		}
	}
	return false
}

// LineItemCalc resultado del cálculo de una línea de factura.
type LineItemCalc struct {
	Amount float64 `json:"amount"` // base imponible: cantidad × precio
	CGST   float64 `json:"cgst"`
	SGST   float64 `json:"sgst"`
	Total  float64 `json:"total"`
}

// CalculateLineItem calcula la base imponible de la línea y reparte el impuesto en
// dos mitades iguales (CGST y SGST).
//
// No valida ni redondea: cantidades negativas o cero producen resultados coherentes
// (negativos o cero) y NaN/Inf se propagan según IEEE-754.
func CalculateLineItem(quantity, rate, gstPercent float64) LineItemCalc {
	amount := quantity * rate
	cgst := halfTax(amount, gstPercent)
	sgst := halfTax(amount, gstPercent)
	return LineItemCalc{
		Amount: amount,
		CGST:   cgst,
		SGST:   sgst,
		Total:  amount + cgst + sgst,
	}
}

// halfTax es la mitad del impuesto de la línea; CGST y SGST salen de la misma
// expresión para que sean idénticos bit a bit.
func halfTax(amount, gstPercent float64) float64 {
	return amount * (gstPercent / 2) / 100
}
