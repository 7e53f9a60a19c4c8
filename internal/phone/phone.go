// Package phone formatea y normaliza teléfonos rusos (+7 XXX XXX XX XX).
//
// Todas las funciones son totales: nunca devuelven error ni hacen panic.
// Una entrada parcial degrada a la agrupación parcial más larga posible.
package phone

import "strings"

// CanonicalDigits es la cantidad de dígitos de un número completo (7 + 10).
const CanonicalDigits = 11

// GetPhoneDigits extrae solo los dígitos, sin otra transformación.
func GetPhoneDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhoneNumber se llama en cada keystroke de un input de teléfono.
// Devuelve "" para entrada vacía (sin "+").
func FormatPhoneNumber(raw string) string {
	return group(canonicalize(GetPhoneDigits(raw)))
}

// NormalizePhoneNumber se usa justo antes de enviar el valor al backend.
// Con 11 dígitos devuelve la forma canónica; si no, la agrupación parcial.
func NormalizePhoneNumber(raw string) string {
	digits := GetPhoneDigits(raw)
	if digits == "" {
		return ""
	}

	normalized := canonicalize(digits)
	if len(normalized) == CanonicalDigits {
		return "+" + normalized[:1] + " " + normalized[1:4] + " " + normalized[4:7] + " " + normalized[7:9] + " " + normalized[9:]
	}
	return FormatPhoneNumber(normalized)
}

// IsValidRussianPhone: exactamente 11 dígitos y el primero es 7 u 8.
func IsValidRussianPhone(raw string) bool {
	digits := GetPhoneDigits(raw)
	if len(digits) != CanonicalDigits {
		return false
	}
	return digits[0] == '7' || digits[0] == '8'
}

// canonicalize aplica la corrección del dígito inicial (8 -> 7, o antepone 7)
// y trunca a 11 dígitos.
func canonicalize(digits string) string {
	if digits == "" {
		return ""
	}
	if digits[0] == '8' {
		digits = "7" + digits[1:]
	}
	if digits[0] != '7' {
		digits = "7" + digits
	}
	if len(digits) > CanonicalDigits {
		digits = digits[:CanonicalDigits]
	}
	return digits
}

// group arma +7, +7 D, +7 DDD, +7 DDD D, ... +7 DDD DDD DD DD.
func group(p string) string {
	switch n := len(p); {
	case n == 0:
		return ""
	case n <= 1:
		return "+" + p
	case n <= 4:
		return "+" + p[:1] + " " + p[1:]
	case n <= 7:
		return "+" + p[:1] + " " + p[1:4] + " " + p[4:]
	case n <= 9:
		return "+" + p[:1] + " " + p[1:4] + " " + p[4:7] + " " + p[7:]
	default:
		return "+" + p[:1] + " " + p[1:4] + " " + p[4:7] + " " + p[7:9] + " " + p[9:]
	}
}
