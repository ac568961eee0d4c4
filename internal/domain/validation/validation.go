package validation

import (
	"errors"
	"fmt"
)

// Error indica que falta (o es inválido) un campo requerido antes de tocar
// el storage. Siempre recuperable: el caller corrige el input y reintenta.
type Error struct {
	Field string
}

func (e *Error) Error() string {
	return fmt.Sprintf("required field missing or invalid: %s", e.Field)
}

// Required construye el error nombrando el campo faltante.
func Required(field string) error {
	return &Error{Field: field}
}

// IsValidation reporta si err (o algo en su cadena) es un error de validación.
func IsValidation(err error) bool {
	var v *Error
	return errors.As(err, &v)
}
