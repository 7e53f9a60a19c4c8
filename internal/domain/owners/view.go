package owners

import (
	"time"

	"pet-admin-console/internal/masking"
)

// View es la proyección de solo-lectura para mostrar un dueño.
// Sin privilegio, teléfono y dirección salen enmascarados; el Owner
// original no se toca.
type View struct {
	ID        int64
	FirstName string
	LastName  string
	FullName  string
	Email     string
	Phone     string
	Address   string
	PetCount  int
	Masked    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewView(o Owner, privileged bool) View {
	return View{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		FullName:  o.FullName(),
		Email:     o.Email,
		Phone:     masking.Phone(o.Phone, privileged),
		Address:   masking.Address(o.Address, privileged),
		PetCount:  len(o.Pets),
		Masked:    !privileged,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
