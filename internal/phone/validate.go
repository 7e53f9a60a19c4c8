package phone

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Region es la región por defecto para phonenumbers.
const Region = "RU"

var ErrInvalidPhone = errors.New("phone must be in format +7 XXX XXX XX XX")

var canonicalRe = regexp.MustCompile(`^\+7 \d{3} \d{3} \d{2} \d{2}$`)

// IsCanonical indica si s ya está en el formato que acepta el backend.
func IsCanonical(s string) bool {
	return canonicalRe.MatchString(s)
}

// Validate se usa al enviar formularios: normaliza y exige un número completo
// que phonenumbers considere posible para RU.
// Devuelve el valor normalizado para que el caller no lo recalcule.
func Validate(raw string) (string, error) {
	normalized := NormalizePhoneNumber(raw)
	if !IsCanonical(normalized) {
		return normalized, ErrInvalidPhone
	}

	num, err := phonenumbers.Parse(normalized, Region)
	if err != nil {
		return normalized, ErrInvalidPhone
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return normalized, ErrInvalidPhone
	}
	return normalized, nil
}

// E164 devuelve +7XXXXXXXXXX, o "" si el número no está completo.
func E164(raw string) string {
	normalized := NormalizePhoneNumber(raw)
	if !IsCanonical(normalized) {
		return ""
	}
	num, err := phonenumbers.Parse(normalized, Region)
	if err != nil {
		// fallback sin librería: el canónico ya garantiza 11 dígitos
		return "+" + GetPhoneDigits(normalized)
	}
	return strings.TrimSpace(phonenumbers.Format(num, phonenumbers.E164))
}
