package owners

import (
	"context"
	"errors"
	"strings"

	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/phone"
	"pet-admin-console/internal/platform/validate"
	"pet-admin-console/internal/search"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("owner not found")
	ErrForbidden    = errors.New("access denied: ADMIN role required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SearchFields: nombre completo ("first last") y email.
func SearchFields(o Owner) []string {
	return []string{o.FirstName + " " + o.LastName, o.Email}
}

// List trae la colección completa y filtra localmente; así "anna iv"
// matchea el nombre completo aunque el backend busque campo por campo.
func (s *Service) List(ctx context.Context, query string) ([]Owner, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(items, query, SearchFields), nil
}

// Views aplica el enmascarado según el rol de la sesión del contexto.
func (s *Service) Views(ctx context.Context, items []Owner) []View {
	privileged := sessions.IsAdmin(ctx)
	out := make([]View, 0, len(items))
	for _, o := range items {
		out = append(out, NewView(o, privileged))
	}
	return out
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	if id <= 0 {
		return Owner{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Pets(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	if ownerID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListPets(ctx, ownerID)
}

type Input struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// Create normaliza el teléfono justo antes de enviarlo al backend.
func (s *Service) Create(ctx context.Context, in Input) (Owner, error) {
	if !sessions.IsAdmin(ctx) {
		return Owner{}, ErrForbidden
	}
	in, err := clean(in)
	if err != nil {
		return Owner{}, err
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Owner, error) {
	if !sessions.IsAdmin(ctx) {
		return Owner{}, ErrForbidden
	}
	if id <= 0 {
		return Owner{}, ErrNotFound
	}
	in, err := clean(in)
	if err != nil {
		return Owner{}, err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if !sessions.IsAdmin(ctx) {
		return ErrForbidden
	}
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func clean(in Input) (Input, error) {
	var errs validate.Errors
	errs.Required("firstName", in.FirstName)
	errs.Required("lastName", in.LastName)
	errs.Email("email", in.Email)
	errs.Required("address", in.Address)

	if errs.Required("phone", in.Phone) {
		normalized, err := phone.Validate(in.Phone)
		if err != nil {
			errs.Add("phone", err.Error())
		}
		in.Phone = normalized
	}
	if err := errs.Err(ErrInvalidInput); err != nil {
		return Input{}, err
	}

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	return in, nil
}
