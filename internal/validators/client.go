package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/abruzzobarber/abruzzo-api/internal/httperr"
)

const (
	maxNameLen  = 100
	maxPhoneLen = 20
)

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

func (e FieldError) Unwrap() error {
	return httperr.ErrBusiness("invalid_input")
}

// ClientName valida el nombre del cliente y devuelve el valor
// recortado. Puras y deterministas, sin efectos.
func ClientName(value string) (string, error) {
	v := strings.TrimSpace(value)
	if len(v) == 0 {
		return "", FieldError{Field: "client_name", Message: "El nombre es obligatorio"}
	}
	// Los topes cuentan caracteres, no bytes: "José" son 4.
	if utf8.RuneCountInString(v) > maxNameLen {
		return "", FieldError{Field: "client_name", Message: "Máximo 100 caracteres"}
	}
	return v, nil
}

// ClientPhone valida el teléfono: solo dígitos, "+", "-",
// paréntesis y espacios.
func ClientPhone(value string) (string, error) {
	v := strings.TrimSpace(value)
	if len(v) == 0 {
		return "", FieldError{Field: "client_phone", Message: "El teléfono es obligatorio"}
	}
	if utf8.RuneCountInString(v) > maxPhoneLen {
		return "", FieldError{Field: "client_phone", Message: "Máximo 20 caracteres"}
	}
	for _, r := range v {
		if !isPhoneRune(r) {
			return "", FieldError{Field: "client_phone", Message: "Formato de teléfono inválido"}
		}
	}
	return v, nil
}

func isPhoneRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '+' || r == '-' || r == '(' || r == ')' || r == ' ':
		return true
	}
	return false
}
