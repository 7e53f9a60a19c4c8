package users

import "time"

// Profile es el perfil del usuario autenticado.
type Profile struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Roles     []string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
