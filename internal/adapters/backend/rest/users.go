package rest

import (
	"context"
	"net/http"

	"pet-admin-console/internal/domain/users"
	"pet-admin-console/internal/platform/httpclient"
)

type usersRepo struct {
	c *Client
}

func NewUsersRepo(c *Client) users.Repository {
	return &usersRepo{c: c}
}

type updateProfileDTO struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type changePasswordDTO struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r *usersRepo) Me(ctx context.Context) (users.Profile, error) {
	var out profileDTO
	if err := r.c.do(ctx, httpclient.Request{Path: "/users/me"}, &out, users.ErrNotFound, nil); err != nil {
		return users.Profile{}, err
	}
	return out.toDomain(), nil
}

func (r *usersRepo) UpdateProfile(ctx context.Context, in users.ProfileInput) (users.Profile, error) {
	var out profileDTO
	err := r.c.do(ctx, httpclient.Request{
		Method: http.MethodPut,
		Path:   "/users/me",
		Body:   updateProfileDTO(in),
	}, &out, users.ErrNotFound, users.ErrInvalidInput)
	if err != nil {
		return users.Profile{}, err
	}
	return out.toDomain(), nil
}

// ChangePassword: el backend responde 400 si la contraseña actual no coincide.
func (r *usersRepo) ChangePassword(ctx context.Context, current, next string) error {
	return r.c.do(ctx, httpclient.Request{
		Method: http.MethodPut,
		Path:   "/users/me/password",
		Body:   changePasswordDTO{CurrentPassword: current, NewPassword: next},
	}, nil, users.ErrNotFound, users.ErrWrongPassword)
}
