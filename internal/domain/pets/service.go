package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/platform/validate"
	"pet-admin-console/internal/search"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("access denied: ADMIN role required")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// ListFilter: Type/OwnerID van al backend, Query se filtra localmente
// sobre nombre, raza y nombre del dueño.
type ListFilter struct {
	Type    Type
	OwnerID int64
	Query   string
}

// SearchFields son los campos de texto que participan de la búsqueda.
func SearchFields(p Pet) []string {
	return []string{p.Name, p.Breed, p.OwnerName}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Pet, error) {
	items, err := s.repo.List(ctx, Query{Type: f.Type, OwnerID: f.OwnerID})
	if err != nil {
		return nil, err
	}
	return search.Filter(items, f.Query, SearchFields), nil
}

func (s *Service) Mine(ctx context.Context) ([]Pet, error) {
	return s.repo.ListMine(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type Input struct {
	Name        string
	Type        Type
	Breed       string
	DateOfBirth time.Time
	Color       string
	Description string
	OwnerID     int64
}

func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	if !sessions.IsAdmin(ctx) {
		return Pet{}, ErrForbidden
	}
	in, err := s.clean(in)
	if err != nil {
		return Pet{}, err
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Pet, error) {
	if !sessions.IsAdmin(ctx) {
		return Pet{}, ErrForbidden
	}
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	in, err := s.clean(in)
	if err != nil {
		return Pet{}, err
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

// Age usa el reloj del servicio (tests lo fijan).
func (s *Service) Age(p Pet) int {
	return AgeAt(p.DateOfBirth, s.now())
}

func (s *Service) clean(in Input) (Input, error) {
	var errs validate.Errors
	errs.Required("name", in.Name)
	errs.Required("breed", in.Breed)
	if in.Type == "" {
		errs.Add("type", "is required")
	} else if _, ok := ParseType(string(in.Type)); !ok {
		errs.Add("type", "is unknown")
	}
	if in.OwnerID <= 0 {
		errs.Add("ownerId", "is required")
	}
	switch {
	case in.DateOfBirth.IsZero():
		errs.Add("dateOfBirth", "is required")
	case !in.DateOfBirth.Before(truncateDay(s.now())):
		errs.Add("dateOfBirth", "must be in the past")
	}
	if err := errs.Err(ErrInvalidInput); err != nil {
		return Input{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Color = strings.TrimSpace(in.Color)
	in.Description = strings.TrimSpace(in.Description)
	in.Type, _ = ParseType(string(in.Type))
	in.DateOfBirth = truncateDay(in.DateOfBirth)
	return in, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
