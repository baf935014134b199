package gst

import (
	"errors"
	"math"
	"strings"
)

// Errores del conversor de importes a letras.
var (
	ErrNegativeAmount  = errors.New("gst: importe negativo")
	ErrNonFiniteAmount = errors.New("gst: importe no finito")
	ErrAmountTooLarge  = errors.New("gst: importe demasiado grande")
)

// maxWordsAmount límite superior (exclusivo) para que las rupias quepan en un
// entero exacto de float64.
const maxWordsAmount = 1e15

const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
)

var ones = [20]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = [10]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountToWords devuelve el importe en letras para la leyenda de la factura:
//
//	"Rupees <rupias> [and <paise> Paise] Only"
//
// Las rupias son floor(amount) y los paise round((amount-rupias)*100). Si el redondeo
// llega a 100 paise no se acarrea: 1.999 produce "Rupees One and One Hundred Paise Only",
// igual que las leyendas ya emitidas. Un importe de cero produce "Rupees Only".
func AmountToWords(amount float64) (string, error) {
	switch {
	case math.IsNaN(amount) || math.IsInf(amount, 0):
		return "", ErrNonFiniteAmount
	case amount < 0:
		return "", ErrNegativeAmount
	case amount >= maxWordsAmount:
		return "", ErrAmountTooLarge
	}

	whole := math.Floor(amount)
	rupees := int64(whole)
	paise := int64(math.Round((amount - whole) * 100))

	parts := []string{"Rupees"}
	if w := inWords(rupees); w != "" {
		parts = append(parts, w)
	}
	if paise > 0 {
		parts = append(parts, "and", inWords(paise), "Paise")
	}
	parts = append(parts, "Only")
	return strings.Join(parts, " "), nil
}

// inWords convierte n >= 0 con la escala india. Cero no tiene palabra.
func inWords(n int64) string {
	switch {
	case n < 20:
		return ones[n]
	case n < 100:
		return withRest(tens[n/10], n%10)
	case n < thousand:
		return withRest(ones[n/100]+" Hundred", n%100)
	case n < lakh:
		return withRest(inWords(n/thousand)+" Thousand", n%thousand)
	case n < crore:
		return withRest(inWords(n/lakh)+" Lakh", n%lakh)
	default:
		return withRest(inWords(n/crore)+" Crore", n%crore)
	}
}

func withRest(head string, rest int64) string {
	if rest == 0 {
		return head
	}
	return head + " " + inWords(rest)
}
