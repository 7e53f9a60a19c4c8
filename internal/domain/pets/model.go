package pets

import (
	"strings"
	"time"
)

// Type es el tipo de mascota que acepta el backend.
// @Enum DOG, CAT, BIRD, FISH, RABBIT, HAMSTER, OTHER
type Type string

const (
	TypeDog     Type = "DOG"
	TypeCat     Type = "CAT"
	TypeBird    Type = "BIRD"
	TypeFish    Type = "FISH"
	TypeRabbit  Type = "RABBIT"
	TypeHamster Type = "HAMSTER"
	TypeOther   Type = "OTHER"
)

// Types en el orden en que los muestra la UI (y estadísticas).
var Types = []Type{TypeDog, TypeCat, TypeBird, TypeFish, TypeRabbit, TypeHamster, TypeOther}

// ParseType acepta minúsculas/espacios; "" => "", false.
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Types {
		if t == known {
			return t, true
		}
	}
	return "", false
}

const DateLayout = "2006-01-02"

// Pet es la mascota tal como la expone el backend.
type Pet struct {
	ID int64

	Name  string
	Type  Type
	Breed string

	// Solo fecha (UTC medianoche).
	DateOfBirth time.Time

	Color       string
	Description string

	OwnerID   int64
	OwnerName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgeAt devuelve años cumplidos a la fecha now.
func AgeAt(dob, now time.Time) int {
	if dob.IsZero() {
		return 0
	}
	now = now.In(dob.Location())
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
