package gst

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundPaise redondea v a dos decimales (paise), mitad alejándose de cero.
// Es el valor que se persiste y se imprime; los cálculos internos no lo usan.
// Valores no finitos devuelven cero.
func RoundPaise(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

// FormatINR da formato de moneda en-IN con agrupación india.
// Ej: 1234567.5 → "₹12,34,567.50", -1000 → "-₹1,000.00".
func FormatINR(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	d := RoundPaise(v)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	s := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + "₹" + groupIndian(intPart) + "." + frac
}

// groupIndian inserta comas en un string de dígitos: las tres últimas cifras
// forman un grupo y el resto va en grupos de dos.
// Ej: "1234567" → "12,34,567".
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head, tail := digits[:n-3], digits[n-3:]
	buf := make([]byte, 0, n+n/2)
	for i, c := range []byte(head) {
		if i > 0 && (len(head)-i)%2 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	buf = append(buf, ',')
	buf = append(buf, tail...)
	return string(buf)
}
