// Comando gstcalc: cálculos GST desde la terminal (líneas, facturas desde CSV,
// importe en letras y validación de GSTIN).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/gst-invoice-api/internal/application/billing"
	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
	"github.com/jhoicas/gst-invoice-api/internal/infrastructure/importer"
	"github.com/jhoicas/gst-invoice-api/pkg/logger"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gstcalc: %v\n", err)
		os.Exit(1)
	}
}

// errInvalidGSTIN el comando gstin termina con código 1 si el GSTIN no es válido.
var errInvalidGSTIN = errors.New("GSTIN inválido")

func newApp(stdout, stderr io.Writer) *cli.App {
	var uc *billing.CalculatorUseCase

	return &cli.App{
		Name:      "gstcalc",
		Usage:     "cálculo de GST (CGST + SGST) para facturas",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "trace, debug, info, warn, error"},
		},
		Before: func(c *cli.Context) error {
			log := logger.New(logger.Config{Env: "production", Level: c.String("log-level"), Out: stderr})
			c.Context = log.WithContext(c.Context)
			uc = billing.NewCalculatorUseCase(billing.NewValidator(), nil, time.Now)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "line",
				Usage: "calcula una línea: gstcalc line --qty 5 --rate 100 --gst 5",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "qty", Required: true, Usage: "cantidad (> 0)"},
					&cli.Float64Flag{Name: "rate", Required: true, Usage: "precio unitario sin impuestos"},
					&cli.Float64Flag{Name: "gst", Required: true, Usage: "tasa GST: 0, 5, 12, 18 o 28"},
					&cli.StringFlag{Name: "description", Usage: "descripción de la línea"},
					&cli.BoolFlag{Name: "json", Usage: "salida JSON"},
				},
				Action: func(c *cli.Context) error {
					out, err := uc.CalculateLineItem(c.Context, dto.LineItemRequest{
						Description: c.String("description"),
						Quantity:    c.Float64("qty"),
						Rate:        c.Float64("rate"),
						GSTRate:     c.Float64("gst"),
					})
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return writeJSON(stdout, out)
					}
					return writeLineItem(stdout, out)
				},
			},
			{
				Name:  "invoice",
				Usage: "calcula una factura desde un CSV (description,quantity,rate,gst_rate)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "ruta del CSV (- = stdin)"},
					&cli.StringFlag{Name: "charset", Value: "utf-8", Usage: "utf-8, iso-8859-1 o windows-1252"},
					&cli.StringFlag{Name: "number", Usage: "número de factura"},
					&cli.BoolFlag{Name: "json", Usage: "salida JSON"},
				},
				Action: func(c *cli.Context) error {
					items, err := readItems(c.String("file"), c.String("charset"))
					if err != nil {
						return err
					}
					out, err := uc.CalculateInvoice(c.Context, dto.CalculateInvoiceRequest{
						InvoiceNumber: c.String("number"),
						Items:         items,
					})
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return writeJSON(stdout, out)
					}
					return writeInvoice(stdout, out)
				},
			},
			{
				Name:      "words",
				Usage:     "importe en letras: gstcalc words 1234567.50",
				ArgsUsage: "<importe>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("words: se espera exactamente un importe")
					}
					amount, err := strconv.ParseFloat(c.Args().First(), 64)
					if err != nil {
						return fmt.Errorf("words: importe no numérico %q", c.Args().First())
					}
					out, err := uc.AmountInWords(c.Context, amount)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(stdout, out.Words)
					return err
				},
			},
			{
				Name:      "gstin",
				Usage:     "valida un GSTIN: gstcalc gstin 27AAPFU0939F1ZV",
				ArgsUsage: "<gstin>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("gstin: se espera exactamente un GSTIN")
					}
					res := uc.CheckGSTIN(c.Context, c.Args().First())
					if !res.Valid {
						return fmt.Errorf("%w: %s", errInvalidGSTIN, res.Reason)
					}
					tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
					fmt.Fprintf(tw, "GSTIN\t%s\n", res.GSTIN)
					fmt.Fprintf(tw, "State code\t%s\n", res.StateCode)
					fmt.Fprintf(tw, "PAN\t%s\n", res.PAN)
					return tw.Flush()
				},
			},
		},
	}
}

func readItems(path, charset string) ([]dto.LineItemRequest, error) {
	if path == "-" {
		return importer.ReadItemsCSV(os.Stdin, charset)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()
	return importer.ReadItemsCSV(f, charset)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeLineItem(w io.Writer, out *dto.LineItemResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Amount\t%s\t\n", out.Formatted.Amount)
	fmt.Fprintf(tw, "CGST (%s%%)\t%s\t\n", num(out.GSTRate/2), out.Formatted.CGST)
	fmt.Fprintf(tw, "SGST (%s%%)\t%s\t\n", num(out.GSTRate/2), out.Formatted.SGST)
	fmt.Fprintf(tw, "Total\t%s\t\n", out.Formatted.Total)
	return tw.Flush()
}

func writeInvoice(w io.Writer, out *dto.InvoiceCalculationResponse) error {
	if out.InvoiceNumber != "" {
		fmt.Fprintf(w, "Invoice %s  %s  (%s)\n\n", out.InvoiceNumber, out.Date, out.Status)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDESCRIPTION\tQTY\tRATE\tGST%\tAMOUNT\tCGST\tSGST\tTOTAL")
	for i, it := range out.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, it.Description, num(it.Quantity), num(it.Rate), num(it.GSTRate),
			it.Formatted.Amount, it.Formatted.CGST, it.Formatted.SGST, it.Formatted.Total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Subtotal\t%s\n", out.FormattedTotals.Subtotal)
	fmt.Fprintf(tw, "CGST\t%s\n", out.FormattedTotals.CGSTTotal)
	fmt.Fprintf(tw, "SGST\t%s\n", out.FormattedTotals.SGSTTotal)
	fmt.Fprintf(tw, "Grand total\t%s\n", out.FormattedTotals.GrandTotal)
	if err := tw.Flush(); err != nil {
		return err
	}
	if out.AmountInWords != "" {
		fmt.Fprintf(w, "\n%s\n", out.AmountInWords)
	}
	for _, warn := range out.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
