package billing

import "time"

// Tipos de cálculo reportados al CalculationRecorder.
const (
	KindLineItem      = "line_item"
	KindInvoice       = "invoice"
	KindVerify        = "verify"
	KindAmountInWords = "amount_in_words"
)

// CalculationRecorder recibe una notificación por cada cálculo completado
// (implementado por infrastructure/metrics). Puede ser nil.
type CalculationRecorder interface {
	ObserveCalculation(kind string, lines int)
}

// Clock devuelve la hora actual; se inyecta para fechar facturas en tests.
type Clock func() time.Time
