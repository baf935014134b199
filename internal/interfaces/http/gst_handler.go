package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-invoice-api/internal/application/billing"
	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
	"github.com/jhoicas/gst-invoice-api/internal/domain"
	"github.com/jhoicas/gst-invoice-api/pkg/gst"
)

// GSTHandler maneja las peticiones HTTP de cálculo GST (sin estado, público).
type GSTHandler struct {
	uc *billing.CalculatorUseCase
}

// NewGSTHandler construye el handler.
func NewGSTHandler(uc *billing.CalculatorUseCase) *GSTHandler {
	return &GSTHandler{uc: uc}
}

// Rates godoc
// @Summary      Tasas GST admitidas
// @Tags         gst
// @Produce      json
// @Success      200  {object}  dto.GSTRatesResponse
// @Router       /api/v1/gst/rates [get]
func (h *GSTHandler) Rates(c *fiber.Ctx) error {
	return c.JSON(h.uc.Rates())
}

// CalculateLineItem godoc
// @Summary      Calcular una línea
// @Description  Base = quantity × rate; CGST y SGST = la mitad de la tasa cada uno.
// @Tags         gst
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LineItemRequest  true  "quantity > 0, rate >= 0, gst_rate en 0/5/12/18/28"
// @Success      200   {object}  dto.LineItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/gst/line-items/calculate [post]
func (h *GSTHandler) CalculateLineItem(c *fiber.Ctx) error {
	var in dto.LineItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CalculateLineItem(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CalculateInvoice godoc
// @Summary      Calcular factura borrador
// @Description  Calcula cada línea en el orden recibido, agrega totales y devuelve el total en letras.
// @Tags         gst
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CalculateInvoiceRequest  true  "items (mínimo 1), seller/buyer opcionales"
// @Success      200   {object}  dto.InvoiceCalculationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/gst/invoices/calculate [post]
func (h *GSTHandler) CalculateInvoice(c *fiber.Ctx) error {
	var in dto.CalculateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CalculateInvoice(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// VerifyInvoice godoc
// @Summary      Verificar importes guardados
// @Description  Recalcula líneas y totales y reporta diferencias a paise. valid=false no es un error HTTP.
// @Tags         gst
// @Accept       json
// @Produce      json
// @Param        body  body      dto.VerifyInvoiceRequest  true  "items con amount/cgst/sgst/total guardados y totals"
// @Success      200   {object}  dto.VerifyInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/gst/invoices/verify [post]
func (h *GSTHandler) VerifyInvoice(c *fiber.Ctx) error {
	var in dto.VerifyInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.VerifyInvoice(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AmountInWords godoc
// @Summary      Importe en letras
// @Description  Rupias y paise con agrupación india (lakh, crore).
// @Tags         gst
// @Produce      json
// @Param        amount  query     number  true  "Importe >= 0 y < 1e15"
// @Success      200     {object}  dto.AmountInWordsResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/v1/gst/amount-in-words [get]
func (h *GSTHandler) AmountInWords(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("amount"))
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount requerido"})
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser numérico"})
	}
	out, err := h.uc.AmountInWords(c.UserContext(), amount)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CheckGSTIN godoc
// @Summary      Validar GSTIN
// @Description  Formato, código de estado y dígito de control. Un GSTIN inválido responde 200 con valid=false.
// @Tags         gstin
// @Produce      json
// @Param        gstin  path      string  true  "GSTIN de 15 caracteres"
// @Success      200    {object}  dto.GSTINResponse
// @Router       /api/v1/gstin/{gstin} [get]
func (h *GSTHandler) CheckGSTIN(c *fiber.Ctx) error {
	return c.JSON(h.uc.CheckGSTIN(c.UserContext(), c.Params("gstin")))
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gst.ErrNegativeAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NEGATIVE_AMOUNT", Message: "el importe no puede ser negativo"})
	case errors.Is(err, gst.ErrAmountTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "AMOUNT_TOO_LARGE", Message: "el importe debe ser menor que 1e15"})
	case errors.Is(err, domain.ErrAmountOverflow):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "AMOUNT_OVERFLOW", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
