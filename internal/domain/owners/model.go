package owners

import (
	"time"

	"pet-admin-console/internal/domain/pets"
)

// Owner es el dueño tal como lo expone el backend.
type Owner struct {
	ID int64

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string

	Pets []pets.Pet

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o Owner) FullName() string {
	switch {
	case o.FirstName == "":
		return o.LastName
	case o.LastName == "":
		return o.FirstName
	default:
		return o.FirstName + " " + o.LastName
	}
}
