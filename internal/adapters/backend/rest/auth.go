package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"pet-admin-console/internal/platform/httpclient"
	"pet-admin-console/internal/ports/auth"
	"pet-admin-console/internal/ports/backend"
)

// Authenticator implementa auth.Authenticator contra /auth/login y /auth/register.
type Authenticator struct {
	c *Client
}

func NewAuthenticator(c *Client) *Authenticator {
	return &Authenticator{c: c}
}

type loginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerDTO struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

func (a *Authenticator) Login(ctx context.Context, username, password string) (auth.Identity, error) {
	var out authResponseDTO
	err := a.c.do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   loginDTO{Username: username, Password: password},
	}, &out, nil, auth.ErrInvalidCredentials)
	if errors.Is(err, backend.ErrUnauthorized) {
		return auth.Identity{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return auth.Identity{}, err
	}
	return toIdentity(out), nil
}

func (a *Authenticator) Register(ctx context.Context, req auth.RegisterRequest) (auth.Identity, error) {
	var out authResponseDTO
	err := a.c.do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   registerDTO(req),
	}, &out, nil, nil)
	if errors.Is(err, backend.ErrConflict) {
		return auth.Identity{}, errors.Join(auth.ErrUserExists, err)
	}
	if err != nil {
		// El backend responde 400 con "already exists" en versiones viejas.
		if strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return auth.Identity{}, errors.Join(auth.ErrUserExists, err)
		}
		return auth.Identity{}, err
	}
	return toIdentity(out), nil
}

func toIdentity(d authResponseDTO) auth.Identity {
	return auth.Identity{
		Token:    d.Token,
		Username: d.Username,
		Email:    d.Email,
		Roles:    auth.NormalizeRoles(d.Roles),
	}
}
