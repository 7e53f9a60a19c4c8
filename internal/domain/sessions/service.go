package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-admin-console/internal/phone"
	"pet-admin-console/internal/platform/validate"
	"pet-admin-console/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("session not found")
	ErrExpired       = errors.New("session expired")
	ErrAlreadyExists = errors.New("session already exists")
)

const DefaultTTL = 24 * time.Hour

type Service struct {
	repo  Repository
	authn auth.Authenticator
	ttl   time.Duration
	now   func() time.Time
}

func NewService(repo Repository, authn auth.Authenticator, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo:  repo,
		authn: authn,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	id, err := s.authn.Login(ctx, username, password)
	if err != nil {
		return Session{}, err
	}
	return s.open(ctx, id)
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Register valida como el backend (username 3..50, password >= 6,
// teléfono +7 XXX XXX XX XX) y abre sesión con el usuario creado.
// El teléfono se normaliza antes de enviarlo.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	var errs validate.Errors
	if errs.Required("username", in.Username) {
		errs.Length("username", in.Username, 3, 50)
	}
	errs.Email("email", in.Email)
	if errs.Required("password", in.Password) {
		errs.Length("password", in.Password, 6, 0)
	}
	errs.Required("firstName", in.FirstName)
	errs.Required("lastName", in.LastName)

	normalized := ""
	if errs.Required("phone", in.Phone) {
		p, err := phone.Validate(in.Phone)
		if err != nil {
			errs.Add("phone", err.Error())
		}
		normalized = p
	}
	if err := errs.Err(ErrInvalidInput); err != nil {
		return Session{}, err
	}

	id, err := s.authn.Register(ctx, auth.RegisterRequest{
		Username:  strings.TrimSpace(in.Username),
		Email:     strings.TrimSpace(in.Email),
		Password:  in.Password,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     normalized,
	})
	if err != nil {
		return Session{}, err
	}
	return s.open(ctx, id)
}

// Resolve carga la sesión; si expiró la borra y devuelve ErrExpired.
func (s *Service) Resolve(ctx context.Context, id string) (Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, ErrNotFound
	}

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if sess.Expired(s.now()) {
		_ = s.repo.Delete(ctx, id)
		return Session{}, ErrExpired
	}
	return sess, nil
}

// Logout es idempotente.
func (s *Service) Logout(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now())
}

func (s *Service) open(ctx context.Context, id auth.Identity) (Session, error) {
	now := s.now()
	sess := Session{
		ID:           uuid.NewString(),
		BackendToken: id.Token,
		Username:     id.Username,
		Email:        id.Email,
		Roles:        auth.NormalizeRoles(id.Roles),
		CreatedAt:    now,
		ExpiresAt:    s.expiry(id.Token, now),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// expiry usa el exp del JWT del backend (sin verificar firma: el gateway no
// tiene la clave) acotado por el TTL configurado.
func (s *Service) expiry(token string, now time.Time) time.Time {
	limit := now.Add(s.ttl)
	if strings.TrimSpace(token) == "" {
		return limit
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return limit
	}
	if claims.ExpiresAt == nil {
		return limit
	}
	exp := claims.ExpiresAt.Time
	if exp.Before(limit) {
		return exp
	}
	return limit
}
