package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorResponse cuerpo de error HTTP ({"error": "mensaje legible"}).
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldErrors errores de validación agrupados por campo.
type FieldErrors map[string][]string

// Add agrega un mensaje de error al campo.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// ValidationErrorResponse cuerpo HTTP 400 para errores de validación.
type ValidationErrorResponse struct {
	Errors FieldErrors `json:"errors"`
}

// IntField acepta un entero JSON enviado como número o como string
// (el frontend manda los valores de formulario como texto). Guarda el valor
// crudo; Int lo convierte y reporta si no es un entero.
type IntField string

// UnmarshalJSON acepta tanto 7 como "7".
func (f *IntField) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*f = IntField(s)
	return nil
}

// Int convierte el valor crudo a int64.
func (f IntField) Int() (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(string(f)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("no es un entero: %q", string(f))
	}
	return n, nil
}
