package billing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
	"github.com/jhoicas/gst-invoice-api/internal/domain"
	"github.com/jhoicas/gst-invoice-api/internal/domain/entity"
	domaingst "github.com/jhoicas/gst-invoice-api/internal/domain/gst"
	"github.com/jhoicas/gst-invoice-api/pkg/gst"
)

const dateLayout = "2006-01-02"

// CalculatorUseCase cálculos GST sin estado: líneas, facturas borrador,
// importe en letras y verificación de importes guardados.
type CalculatorUseCase struct {
	validate *validator.Validate
	recorder CalculationRecorder
	clock    Clock
}

// NewCalculatorUseCase construye el caso de uso. validate nil usa NewValidator,
// recorder puede ser nil y clock nil usa time.Now.
func NewCalculatorUseCase(validate *validator.Validate, recorder CalculationRecorder, clock Clock) *CalculatorUseCase {
	if validate == nil {
		validate = NewValidator()
	}
	if clock == nil {
		clock = time.Now
	}
	return &CalculatorUseCase{validate: validate, recorder: recorder, clock: clock}
}

// CalculateLineItem calcula base, CGST, SGST y total de una línea.
func (uc *CalculatorUseCase) CalculateLineItem(ctx context.Context, in dto.LineItemRequest) (*dto.LineItemResponse, error) {
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	c := gst.CalculateLineItem(in.Quantity, in.Rate, in.GSTRate)
	if !isFinite(c.Total) {
		return nil, fmt.Errorf("%w: total de la línea", domain.ErrAmountOverflow)
	}

	zerolog.Ctx(ctx).Debug().
		Float64("quantity", in.Quantity).
		Float64("rate", in.Rate).
		Float64("gst_rate", in.GSTRate).
		Float64("total", c.Total).
		Msg("línea calculada")
	uc.observe(KindLineItem, 1)

	resp := toLineItemResponse(entity.InvoiceItem{
		Description: in.Description,
		Quantity:    in.Quantity,
		Rate:        in.Rate,
		GSTRate:     in.GSTRate,
		Amount:      c.Amount,
		CGST:        c.CGST,
		SGST:        c.SGST,
		Total:       c.Total,
	})
	return &resp, nil
}

// CalculateInvoice arma una factura borrador: calcula cada línea en el orden recibido,
// agrega los totales en ese mismo orden y expresa el total general en letras.
func (uc *CalculatorUseCase) CalculateInvoice(ctx context.Context, in dto.CalculateInvoiceRequest) (*dto.InvoiceCalculationResponse, error) {
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}

	now := uc.clock()
	date := now
	if in.Date != "" {
		d, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date: %v", domain.ErrInvalidInput, err)
		}
		date = d
	}
	var due *time.Time
	if in.DueDate != "" {
		d, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: due_date: %v", domain.ErrInvalidInput, err)
		}
		if d.Before(truncateDay(date)) {
			return nil, fmt.Errorf("%w: due_date no puede ser anterior a date", domain.ErrInvalidInput)
		}
		due = &d
	}

	number := strings.TrimSpace(in.InvoiceNumber)
	if number == "" && in.Sequence != nil {
		number = GenerateInvoiceNumber(now, *in.Sequence)
	}

	inv := &entity.Invoice{
		Number:  number,
		Date:    date,
		DueDate: due,
		Notes:   in.Notes,
		Seller:  toParty(in.Seller),
		Buyer:   toParty(in.Buyer),
		Status:  entity.InvoiceStatusDraft,
	}
	inv.Items = make([]entity.InvoiceItem, len(in.Items))
	for i, it := range in.Items {
		inv.Items[i] = entity.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			GSTRate:     it.GSTRate,
		}
	}
	inv.Items, inv.Totals = domaingst.Recompute(inv.Items)
	if !isFinite(inv.Totals.GrandTotal) {
		return nil, fmt.Errorf("%w: total general", domain.ErrAmountOverflow)
	}

	var warnings []string
	words, err := gst.AmountToWords(inv.Totals.GrandTotal)
	if err != nil {
		// Solo falla con totales >= 1e15; la factura se devuelve igualmente.
		warnings = append(warnings, "amount_in_words omitido: "+err.Error())
	}
	intra := inv.IsIntraState()
	if !intra {
		warnings = append(warnings, fmt.Sprintf(
			"vendedor (estado %s) y comprador (estado %s) están en estados distintos; IGST no se aplica, se usa CGST + SGST",
			inv.Seller.StateCode(), inv.Buyer.StateCode()))
	}

	zerolog.Ctx(ctx).Debug().
		Str("invoice_number", inv.Number).
		Int("lines", len(inv.Items)).
		Float64("grand_total", inv.Totals.GrandTotal).
		Bool("intra_state", intra).
		Msg("factura calculada")
	uc.observe(KindInvoice, len(inv.Items))

	resp := &dto.InvoiceCalculationResponse{
		InvoiceNumber:   inv.Number,
		Date:            inv.Date.Format(dateLayout),
		Notes:           inv.Notes,
		Status:          inv.Status,
		Seller:          toPartyDTO(inv.Seller),
		Buyer:           toPartyDTO(inv.Buyer),
		Items:           make([]dto.LineItemResponse, len(inv.Items)),
		Totals:          toTotalsDTO(inv.Totals),
		RoundedTotals:   toRoundedTotals(inv.Totals),
		FormattedTotals: toFormattedTotals(inv.Totals),
		AmountInWords:   words,
		IntraState:      intra,
		Warnings:        warnings,
	}
	if inv.DueDate != nil {
		resp.DueDate = inv.DueDate.Format(dateLayout)
	}
	for i, it := range inv.Items {
		resp.Items[i] = toLineItemResponse(it)
	}
	return resp, nil
}

// AmountInWords expresa un importe en rupias y paise con agrupación india.
// Los errores de pkg/gst se devuelven envueltos en domain.ErrInvalidInput.
func (uc *CalculatorUseCase) AmountInWords(ctx context.Context, amount float64) (*dto.AmountInWordsResponse, error) {
	words, err := gst.AmountToWords(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	zerolog.Ctx(ctx).Debug().Float64("amount", amount).Msg("importe en letras")
	uc.observe(KindAmountInWords, 0)
	return &dto.AmountInWordsResponse{
		Amount:    amount,
		Formatted: gst.FormatINR(amount),
		Words:     words,
	}, nil
}

// Rates tasas GST admitidas.
func (uc *CalculatorUseCase) Rates() dto.GSTRatesResponse {
	rates := make([]float64, len(gst.Rates))
	copy(rates, gst.Rates)
	return dto.GSTRatesResponse{Rates: rates}
}

// VerifyInvoice recalcula líneas y totales guardados y reporta las diferencias a paise.
// Una factura con diferencias no es un error: se devuelve Valid=false.
func (uc *CalculatorUseCase) VerifyInvoice(ctx context.Context, in dto.VerifyInvoiceRequest) (*dto.VerifyInvoiceResponse, error) {
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	items := make([]entity.InvoiceItem, len(in.Items))
	for i, it := range in.Items {
		items[i] = entity.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			GSTRate:     it.GSTRate,
			Amount:      it.Amount,
			CGST:        it.CGST,
			SGST:        it.SGST,
			Total:       it.Total,
		}
	}
	stored := entity.InvoiceTotals{
		Subtotal:   in.Totals.Subtotal,
		CGSTTotal:  in.Totals.CGSTTotal,
		SGSTTotal:  in.Totals.SGSTTotal,
		GrandTotal: in.Totals.GrandTotal,
	}

	_, recomputed := domaingst.Recompute(items)
	resp := &dto.VerifyInvoiceResponse{Valid: true, Recomputed: toTotalsDTO(recomputed)}

	if err := domaingst.ValidateTotals(items, stored); err != nil {
		resp.Valid = false
		for _, e := range unwrapJoined(err) {
			if errors.Is(e, domaingst.ErrTotalsMismatch) {
				continue
			}
			var mm *domaingst.MismatchError
			if errors.As(e, &mm) {
				resp.Mismatches = append(resp.Mismatches, dto.MismatchDTO{
					Field:    mm.Field,
					Stored:   mm.Stored.StringFixed(2),
					Expected: mm.Expected.StringFixed(2),
				})
				continue
			}
			resp.Problems = append(resp.Problems, e.Error())
		}
	}

	zerolog.Ctx(ctx).Debug().
		Int("lines", len(items)).
		Bool("valid", resp.Valid).
		Int("mismatches", len(resp.Mismatches)).
		Msg("factura verificada")
	uc.observe(KindVerify, len(items))
	return resp, nil
}

// CheckGSTIN valida un GSTIN; un GSTIN inválido no es un error de la operación.
func (uc *CalculatorUseCase) CheckGSTIN(ctx context.Context, value string) dto.GSTINResponse {
	g, err := gst.ParseGSTIN(value)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("GSTIN rechazado")
		return dto.GSTINResponse{
			GSTIN:  strings.ToUpper(strings.TrimSpace(value)),
			Valid:  false,
			Reason: err.Error(),
		}
	}
	return dto.GSTINResponse{
		GSTIN:     g.Value,
		Valid:     true,
		StateCode: g.StateCode,
		PAN:       g.PAN,
	}
}

func (uc *CalculatorUseCase) observe(kind string, lines int) {
	if uc.recorder != nil {
		uc.recorder.ObserveCalculation(kind, lines)
	}
}

func unwrapJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
