package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrAmountOverflow = errors.New("importes fuera del rango representable")
)
