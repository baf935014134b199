package dto

import "github.com/shopspring/decimal"

// ── Entrada ──────────────────────────────────────────────────────────────────

// LineItemRequest línea a calcular: cantidad × precio unitario con una tasa GST estándar.
type LineItemRequest struct {
	Description string  `json:"description" validate:"max=500"`
	Quantity    float64 `json:"quantity" validate:"finite,gt=0"`
	Rate        float64 `json:"rate" validate:"finite,gte=0"`
	GSTRate     float64 `json:"gst_rate" validate:"gst_rate"`
}

// PartyDTO datos del vendedor o del comprador (entrada y eco en la respuesta).
type PartyDTO struct {
	Name    string `json:"name" validate:"required,max=200"`
	GSTIN   string `json:"gstin,omitempty" validate:"omitempty,gstin"`
	Address string `json:"address,omitempty" validate:"max=500"`
	City    string `json:"city,omitempty" validate:"max=100"`
	State   string `json:"state,omitempty" validate:"max=100"`
	Pincode string `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
	Phone   string `json:"phone,omitempty" validate:"max=20"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

// CalculateInvoiceRequest body para POST /api/v1/gst/invoices/calculate.
// Si invoice_number va vacío y se envía sequence se genera INV-YYMM-NNNN.
type CalculateInvoiceRequest struct {
	InvoiceNumber string            `json:"invoice_number,omitempty" validate:"max=50"`
	Sequence      *int              `json:"sequence,omitempty" validate:"omitempty,gte=0"`
	Date          string            `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate       string            `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         string            `json:"notes,omitempty" validate:"max=2000"`
	Seller        *PartyDTO         `json:"seller,omitempty"`
	Buyer         *PartyDTO         `json:"buyer,omitempty"`
	Items         []LineItemRequest `json:"items" validate:"required,min=1,max=500,dive"`
}

// StoredLineItem línea tal como quedó guardada, con sus importes calculados.
type StoredLineItem struct {
	Description string  `json:"description" validate:"max=500"`
	Quantity    float64 `json:"quantity" validate:"finite,gt=0"`
	Rate        float64 `json:"rate" validate:"finite,gte=0"`
	GSTRate     float64 `json:"gst_rate" validate:"gst_rate"`
	Amount      float64 `json:"amount" validate:"finite"`
	CGST        float64 `json:"cgst" validate:"finite"`
	SGST        float64 `json:"sgst" validate:"finite"`
	Total       float64 `json:"total" validate:"finite"`
}

// VerifyInvoiceRequest body para POST /api/v1/gst/invoices/verify.
type VerifyInvoiceRequest struct {
	Items  []StoredLineItem `json:"items" validate:"required,min=1,max=500,dive"`
	Totals TotalsDTO        `json:"totals"`
}

// ── Salida ───────────────────────────────────────────────────────────────────

// TotalsDTO totales sin redondear (float64), tal como los produce el motor.
type TotalsDTO struct {
	Subtotal   float64 `json:"subtotal" validate:"finite"`
	CGSTTotal  float64 `json:"cgst_total" validate:"finite"`
	SGSTTotal  float64 `json:"sgst_total" validate:"finite"`
	GrandTotal float64 `json:"grand_total" validate:"finite"`
}

// RoundedTotalsDTO totales redondeados a paise (medio hacia arriba).
type RoundedTotalsDTO struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	CGSTTotal  decimal.Decimal `json:"cgst_total"`
	SGSTTotal  decimal.Decimal `json:"sgst_total"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// FormattedTotalsDTO totales con formato en-IN ("₹1,23,456.00").
type FormattedTotalsDTO struct {
	Subtotal   string `json:"subtotal"`
	CGSTTotal  string `json:"cgst_total"`
	SGSTTotal  string `json:"sgst_total"`
	GrandTotal string `json:"grand_total"`
}

// LineAmountsRounded importes de una línea redondeados a paise.
type LineAmountsRounded struct {
	Amount decimal.Decimal `json:"amount"`
	CGST   decimal.Decimal `json:"cgst"`
	SGST   decimal.Decimal `json:"sgst"`
	Total  decimal.Decimal `json:"total"`
}

// LineAmountsFormatted importes de una línea con formato en-IN.
type LineAmountsFormatted struct {
	Amount string `json:"amount"`
	CGST   string `json:"cgst"`
	SGST   string `json:"sgst"`
	Total  string `json:"total"`
}

// LineItemResponse línea calculada: valores crudos, redondeados y formateados.
type LineItemResponse struct {
	Description string               `json:"description,omitempty"`
	Quantity    float64              `json:"quantity"`
	Rate        float64              `json:"rate"`
	GSTRate     float64              `json:"gst_rate"`
	Amount      float64              `json:"amount"`
	CGST        float64              `json:"cgst"`
	SGST        float64              `json:"sgst"`
	Total       float64              `json:"total"`
	Rounded     LineAmountsRounded   `json:"rounded"`
	Formatted   LineAmountsFormatted `json:"formatted"`
}

// InvoiceCalculationResponse factura borrador calculada.
type InvoiceCalculationResponse struct {
	InvoiceNumber   string             `json:"invoice_number,omitempty"`
	Date            string             `json:"date"`
	DueDate         string             `json:"due_date,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Status          string             `json:"status"`
	Seller          *PartyDTO          `json:"seller,omitempty"`
	Buyer           *PartyDTO          `json:"buyer,omitempty"`
	Items           []LineItemResponse `json:"items"`
	Totals          TotalsDTO          `json:"totals"`
	RoundedTotals   RoundedTotalsDTO   `json:"rounded_totals"`
	FormattedTotals FormattedTotalsDTO `json:"formatted_totals"`
	AmountInWords   string             `json:"amount_in_words"`
	IntraState      bool               `json:"intra_state"`
	Warnings        []string           `json:"warnings,omitempty"`
}

// AmountInWordsResponse respuesta de GET /api/v1/gst/amount-in-words.
type AmountInWordsResponse struct {
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
	Words     string  `json:"words"`
}

// GSTRatesResponse tasas GST admitidas (porcentaje).
type GSTRatesResponse struct {
	Rates []float64 `json:"rates"`
}

// MismatchDTO diferencia entre un importe guardado y el recalculado (a paise).
type MismatchDTO struct {
	Field    string `json:"field"`
	Stored   string `json:"stored"`
	Expected string `json:"expected"`
}

// VerifyInvoiceResponse resultado de verificar importes guardados.
type VerifyInvoiceResponse struct {
	Valid      bool          `json:"valid"`
	Mismatches []MismatchDTO `json:"mismatches,omitempty"`
	Problems   []string      `json:"problems,omitempty"`
	Recomputed TotalsDTO     `json:"recomputed"`
}

// GSTINResponse resultado de validar un GSTIN.
type GSTINResponse struct {
	GSTIN     string `json:"gstin"`
	Valid     bool   `json:"valid"`
	StateCode string `json:"state_code,omitempty"`
	PAN       string `json:"pan,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
