// Package search filtra colecciones en memoria por texto libre y
// compone el debounce de búsquedas contra el backend (Live).
package search

import "strings"

// Fields selecciona los campos de texto de un registro que participan del match.
type Fields[T any] func(item T) []string

// Normalize: trim + lowercase. Sin plegado de acentos/diacríticos.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// IsBlank indica que la query equivale a "sin filtro".
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Filter devuelve los items cuyo algún campo contiene la query (case-insensitive).
// Query vacía: devuelve items sin filtrar, mismo orden.
// Es un filtro estable: respeta el orden de entrada y no modifica items.
func Filter[T any](items []T, query string, fields Fields[T]) []T {
	q := Normalize(query)
	if q == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(fields(it), q) {
			out = append(out, it)
		}
	}
	return out
}

// Matches espera una query ya normalizada.
func Matches(fields []string, normalizedQuery string) bool {
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), normalizedQuery) {
			return true
		}
	}
	return false
}
