package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-admin-console/internal/phone"
	"pet-admin-console/internal/platform/validate"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("user not found")
	ErrWrongPassword = errors.New("current password is incorrect")
)

const MinPasswordLength = 6

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Me(ctx context.Context) (Profile, error) {
	return s.repo.Me(ctx)
}

type ProfileInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// UpdateProfile exige el teléfono canónico (+7 XXX XXX XX XX); lo
// normaliza antes de validar.
func (s *Service) UpdateProfile(ctx context.Context, in ProfileInput) (Profile, error) {
	var errs validate.Errors
	errs.Email("email", in.Email)
	errs.Required("firstName", in.FirstName)
	errs.Required("lastName", in.LastName)
	if errs.Required("phone", in.Phone) {
		normalized, err := phone.Validate(in.Phone)
		if err != nil {
			errs.Add("phone", err.Error())
		}
		in.Phone = normalized
	}
	if err := errs.Err(ErrInvalidInput); err != nil {
		return Profile{}, err
	}

	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	return s.repo.UpdateProfile(ctx, in)
}

func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	var errs validate.Errors
	errs.Required("currentPassword", current)
	if errs.Required("newPassword", next) {
		errs.Length("newPassword", next, MinPasswordLength, 0)
	}
	if err := errs.Err(ErrInvalidInput); err != nil {
		return err
	}
	if current == next {
		return fmt.Errorf("%w: newPassword must differ from currentPassword", ErrInvalidInput)
	}
	return s.repo.ChangePassword(ctx, current, next)
}
