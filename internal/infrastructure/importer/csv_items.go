// Package importer lee líneas de factura desde hojas de cálculo exportadas a CSV.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
)

var (
	// ErrUnsupportedCharset juego de caracteres no soportado.
	ErrUnsupportedCharset = errors.New("importer: charset no soportado")
	// ErrInvalidRow fila con columnas faltantes o números no válidos.
	ErrInvalidRow = errors.New("importer: fila inválida")
)

// Columnas esperadas: description,quantity,rate,gst_rate
const columns = 4

// decoderFor devuelve el decodificador a UTF-8 para el charset indicado ("" = utf-8).
func decoderFor(charset string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		// Quita el BOM que añaden algunas hojas de cálculo.
		return unicode.UTF8BOM.NewDecoder(), nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCharset, charset)
	}
}

// ReadItemsCSV lee las líneas de factura. La cabecera es opcional: se omite si la
// primera fila lleva los nombres description,quantity,rate,gst_rate (sin distinguir
// mayúsculas). Los errores indican el número de línea.
func ReadItemsCSV(r io.Reader, charset string) ([]dto.LineItemRequest, error) {
	dec, err := decoderFor(charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var items []dto.LineItemRequest
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if isHeader(rec) {
				continue
			}
		}
		if isBlank(rec) {
			continue
		}
		item, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseRow(rec []string) (dto.LineItemRequest, error) {
	if len(rec) < columns {
		return dto.LineItemRequest{}, fmt.Errorf("%w: se esperaban %d columnas, hay %d", ErrInvalidRow, columns, len(rec))
	}
	qty, err := parseNumber(rec[1])
	if err != nil {
		return dto.LineItemRequest{}, fmt.Errorf("%w: quantity %q", ErrInvalidRow, rec[1])
	}
	rate, err := parseNumber(rec[2])
	if err != nil {
		return dto.LineItemRequest{}, fmt.Errorf("%w: rate %q", ErrInvalidRow, rec[2])
	}
	gstRate, err := parseNumber(strings.TrimSuffix(strings.TrimSpace(rec[3]), "%"))
	if err != nil {
		return dto.LineItemRequest{}, fmt.Errorf("%w: gst_rate %q", ErrInvalidRow, rec[3])
	}
	return dto.LineItemRequest{
		Description: strings.TrimSpace(rec[0]),
		Quantity:    qty,
		Rate:        rate,
		GSTRate:     gstRate,
	}, nil
}

// parseNumber acepta separadores de miles con coma ("1,250.50").
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return strconv.ParseFloat(s, 64)
}

// headerNames nombres de columna aceptados en la cabecera, en minúsculas.
var headerNames = [columns]string{"description", "quantity", "rate", "gst_rate"}

// isHeader reconoce la cabecera sólo por sus nombres de columna; una primera fila con
// datos mal formados no es cabecera y se reporta como ErrInvalidRow.
func isHeader(rec []string) bool {
	if len(rec) < 2 {
		return false
	}
	for i, f := range rec {
		if i >= columns {
			break
		}
		if strings.ToLower(strings.TrimSpace(f)) != headerNames[i] {
			return false
		}
	}
	return true
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
