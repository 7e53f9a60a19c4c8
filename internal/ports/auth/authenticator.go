package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username or email already exists")
)

// Identity es lo que devuelve el backend al autenticar.
type Identity struct {
	Token    string
	Username string
	Email    string
	Roles    []string
}

type RegisterRequest struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Authenticator autentica contra el backend (REST o dev in-memory).
type Authenticator interface {
	Login(ctx context.Context, username, password string) (Identity, error)
	Register(ctx context.Context, req RegisterRequest) (Identity, error)
}

const rolePrefix = "ROLE_"

// NormalizeRoles quita el prefijo ROLE_ y pasa a mayúsculas.
func NormalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		r = strings.ToUpper(strings.TrimSpace(r))
		r = strings.TrimPrefix(r, rolePrefix)
		if r == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
