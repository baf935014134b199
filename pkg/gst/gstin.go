package gst

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidGSTIN GSTIN con formato, código de estado o dígito de control inválido.
var ErrInvalidGSTIN = errors.New("gst: GSTIN inválido")

// gstinCharset alfabeto base 36 usado por el dígito de control del GSTIN.
const gstinCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Estructura: 2 dígitos de estado + PAN (AAAAA9999A) + entidad + carácter por defecto + control.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z][0-9A-Z][0-9A-Z]$`)

// GSTIN número de registro GST ya validado.
type GSTIN struct {
	Value     string
	StateCode string
	PAN       string
	Checksum  byte
}

// SameState indica si ambos registros pertenecen al mismo estado (venta intra-estatal).
func (g GSTIN) SameState(other GSTIN) bool {
	return g.StateCode != "" && g.StateCode == other.StateCode
}

// ParseGSTIN normaliza (trim + mayúsculas) y valida un GSTIN de 15 caracteres.
// Acepta "27aapfu0939f1zv" o " 27AAPFU0939F1ZV ".
func ParseGSTIN(s string) (GSTIN, error) {
	v := normalizeGSTIN(s)
	if len(v) != 15 {
		return GSTIN{}, fmt.Errorf("%w: debe tener 15 caracteres, se recibieron %d", ErrInvalidGSTIN, len(v))
	}
	if !gstinPattern.MatchString(v) {
		return GSTIN{}, fmt.Errorf("%w: formato no reconocido", ErrInvalidGSTIN)
	}
	state := v[:2]
	if !validStateCode(state) {
		return GSTIN{}, fmt.Errorf("%w: código de estado %s desconocido", ErrInvalidGSTIN, state)
	}
	expected, err := ComputeGSTINChecksum(v[:14])
	if err != nil {
		return GSTIN{}, err
	}
	if v[14] != expected {
		return GSTIN{}, fmt.Errorf("%w: dígito de control esperado %c, recibido %c", ErrInvalidGSTIN, expected, v[14])
	}
	return GSTIN{
		Value:     v,
		StateCode: state,
		PAN:       v[2:12],
		Checksum:  v[14],
	}, nil
}

// ComputeGSTINChecksum calcula el carácter de control (posición 15) a partir de los
// 14 primeros caracteres: factores alternos 1 y 2, cada producto se descompone en
// cociente + resto base 36 y el control es (36 - suma mod 36) mod 36.
func ComputeGSTINChecksum(first14 string) (byte, error) {
	v := normalizeGSTIN(first14)
	if len(v) < 14 {
		return 0, fmt.Errorf("%w: se requieren 14 caracteres para calcular el control, se encontraron %d", ErrInvalidGSTIN, len(v))
	}
	var sum int
	for i := 0; i < 14; i++ {
		idx := strings.IndexByte(gstinCharset, v[i])
		if idx < 0 {
			return 0, fmt.Errorf("%w: carácter %q no permitido", ErrInvalidGSTIN, v[i])
		}
		factor := 1
		if i%2 == 1 {
			factor = 2
		}
		p := idx * factor
		sum += p/36 + p%36
	}
	return gstinCharset[(36-sum%36)%36], nil
}

// validStateCode códigos de estado/UT del GST: 01-38, 97 (otros territorios) y 99 (centro).
func validStateCode(code string) bool {
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return (n >= 1 && n <= 38) || n == 97 || n == 99
}

func normalizeGSTIN(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
