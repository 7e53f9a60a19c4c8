// Package masking produce proyecciones de solo-lectura de campos sensibles
// (teléfono, dirección) para viewers sin privilegio de admin.
// Nunca modifica el registro original.
package masking

import (
	"strings"

	"pet-admin-console/internal/phone"
)

// MaskPhone: +7 999 999 99 99 -> +7-9**-***-**-99.
// Con menos de 11 dígitos devuelve la entrada tal cual (no se puede enmascarar
// de forma segura un número ambiguo).
func MaskPhone(p string) string {
	if p == "" {
		return ""
	}
	digits := phone.GetPhoneDigits(p)
	if len(digits) < phone.CanonicalDigits {
		return p
	}

	normalized := digits
	if normalized[0] == '8' {
		normalized = "7" + normalized[1:]
	}

	first := normalized[1:2]
	lastTwo := normalized[len(normalized)-2:]
	return "+7-" + first + "**-***-**-" + lastTwo
}

// GetCity devuelve la parte antes de la primera coma (trim), o toda la
// dirección si no hay coma.
func GetCity(address string) string {
	city, _, _ := strings.Cut(address, ",")
	return strings.TrimSpace(city)
}

// Phone aplica MaskPhone solo si el viewer no tiene privilegio.
func Phone(p string, privileged bool) string {
	if privileged {
		return p
	}
	return MaskPhone(p)
}

// Address aplica GetCity solo si el viewer no tiene privilegio.
func Address(address string, privileged bool) string {
	if privileged {
		return address
	}
	return GetCity(address)
}
