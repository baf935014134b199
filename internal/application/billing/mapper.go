package billing

import (
	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
	"github.com/jhoicas/gst-invoice-api/internal/domain/entity"
	"github.com/jhoicas/gst-invoice-api/pkg/gst"
)

func toLineItemResponse(it entity.InvoiceItem) dto.LineItemResponse {
	return dto.LineItemResponse{
		Description: it.Description,
		Quantity:    it.Quantity,
		Rate:        it.Rate,
		GSTRate:     it.GSTRate,
		Amount:      it.Amount,
		CGST:        it.CGST,
		SGST:        it.SGST,
		Total:       it.Total,
		Rounded: dto.LineAmountsRounded{
			Amount: gst.RoundPaise(it.Amount),
			CGST:   gst.RoundPaise(it.CGST),
			SGST:   gst.RoundPaise(it.SGST),
			Total:  gst.RoundPaise(it.Total),
		},
		Formatted: dto.LineAmountsFormatted{
			Amount: gst.FormatINR(it.Amount),
			CGST:   gst.FormatINR(it.CGST),
			SGST:   gst.FormatINR(it.SGST),
			Total:  gst.FormatINR(it.Total),
		},
	}
}

func toTotalsDTO(t entity.InvoiceTotals) dto.TotalsDTO {
	return dto.TotalsDTO{
		Subtotal:   t.Subtotal,
		CGSTTotal:  t.CGSTTotal,
		SGSTTotal:  t.SGSTTotal,
		GrandTotal: t.GrandTotal,
	}
}

func toRoundedTotals(t entity.InvoiceTotals) dto.RoundedTotalsDTO {
	return dto.RoundedTotalsDTO{
		Subtotal:   gst.RoundPaise(t.Subtotal),
		CGSTTotal:  gst.RoundPaise(t.CGSTTotal),
		SGSTTotal:  gst.RoundPaise(t.SGSTTotal),
		GrandTotal: gst.RoundPaise(t.GrandTotal),
	}
}

func toFormattedTotals(t entity.InvoiceTotals) dto.FormattedTotalsDTO {
	return dto.FormattedTotalsDTO{
		Subtotal:   gst.FormatINR(t.Subtotal),
		CGSTTotal:  gst.FormatINR(t.CGSTTotal),
		SGSTTotal:  gst.FormatINR(t.SGSTTotal),
		GrandTotal: gst.FormatINR(t.GrandTotal),
	}
}

// toParty normaliza el GSTIN (ya validado por el validador).
func toParty(p *dto.PartyDTO) *entity.Party {
	if p == nil {
		return nil
	}
	party := &entity.Party{
		Name:    p.Name,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		Pincode: p.Pincode,
		Phone:   p.Phone,
		Email:   p.Email,
	}
	if g, err := gst.ParseGSTIN(p.GSTIN); err == nil {
		party.GSTIN = g.Value
	}
	return party
}

func toPartyDTO(p *entity.Party) *dto.PartyDTO {
	if p == nil {
		return nil
	}
	return &dto.PartyDTO{
		Name:    p.Name,
		GSTIN:   p.GSTIN,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		Pincode: p.Pincode,
		Phone:   p.Phone,
		Email:   p.Email,
	}
}
