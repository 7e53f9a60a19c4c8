package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// FieldError describe un campo inválido. Los dominios la envuelven
// con su propio ErrInvalidInput.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Errors acumula FieldError en orden de aparición.
type Errors []*FieldError

func (es *Errors) Add(field, reason string) {
	*es = append(*es, &FieldError{Field: field, Reason: reason})
}

func (es *Errors) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		es.Add(field, "is required")
		return false
	}
	return true
}

func (es *Errors) Length(field, value string, min, max int) {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	switch {
	case min > 0 && n < min:
		es.Add(field, fmt.Sprintf("must be at least %d characters", min))
	case max > 0 && n > max:
		es.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func (es *Errors) Email(field, value string) {
	if !es.Required(field, value) {
		return
	}
	if !Email(value) {
		es.Add(field, "must be a valid email")
	}
}

// Err devuelve nil si no hubo errores; si hubo, envuelve base (p.ej. ErrInvalidInput).
func (es Errors) Err(base error) error {
	if len(es) == 0 {
		return nil
	}
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Error())
	}
	return fmt.Errorf("%w: %s", base, strings.Join(parts, "; "))
}

// Email acepta solo direcciones "desnudas" (sin display name).
func Email(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".")
}
