package billing

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/gst-invoice-api/internal/domain"
	"github.com/jhoicas/gst-invoice-api/pkg/gst"
)

// NewValidator crea el validador de DTOs con las etiquetas propias del dominio:
//   - gst_rate: la tasa pertenece a gst.Rates
//   - gstin:    GSTIN con formato, estado y dígito de control válidos
//   - finite:   número distinto de NaN e ±Inf
//
// Los mensajes usan el nombre JSON del campo (items[0].quantity).
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("gst_rate", func(fl validator.FieldLevel) bool {
		return isFloat(fl.Field()) && gst.IsStandardRate(fl.Field().Float())
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		if !isFloat(fl.Field()) {
			return false
		}
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, err := gst.ParseGSTIN(fl.Field().String())
		return err == nil
	})
	return v
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float64 || v.Kind() == reflect.Float32
}

// validateStruct valida s y traduce los errores del validador a domain.ErrInvalidInput
// con la lista de campos afectados.
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

// fieldMessage mensaje legible para el cliente; el namespace sin el nombre del struct raíz.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " es obligatorio"
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual que %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s elemento(s)", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s supera el máximo de %s", field, fe.Param())
	case "gst_rate":
		return fmt.Sprintf("%s debe ser una de las tasas 0, 5, 12, 18, 28", field)
	case "gstin":
		return field + " no es un GSTIN válido"
	case "finite":
		return field + " debe ser un número finito"
	case "datetime":
		return fmt.Sprintf("%s debe tener formato YYYY-MM-DD", field)
	case "email":
		return field + " debe ser un email válido"
	case "len", "numeric":
		return field + " debe ser un PIN de 6 dígitos"
	default:
		return fmt.Sprintf("%s no cumple %s", field, fe.Tag())
	}
}
