package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-admin-console/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const DefaultTokenTTL = 24 * time.Hour

// Authenticator emite JWT HS256 como lo haría el backend real.
type Authenticator struct {
	s      *Store
	secret []byte
	ttl    time.Duration
	cost   int
}

func NewAuthenticator(s *Store, secret string, ttl time.Duration) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("memory auth: jwt secret required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Authenticator{
		s:      s,
		secret: []byte(secret),
		ttl:    ttl,
		cost:   bcrypt.DefaultCost,
	}, nil
}

type tokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

func (a *Authenticator) Login(ctx context.Context, username, password string) (auth.Identity, error) {
	a.s.mu.RLock()
	u, ok := a.s.users[strings.TrimSpace(username)]
	var snapshot userRec
	if ok {
		snapshot = *u
	}
	a.s.mu.RUnlock()

	if !ok || !snapshot.Enabled {
		return auth.Identity{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(snapshot.PasswordHash, []byte(password)); err != nil {
		return auth.Identity{}, auth.ErrInvalidCredentials
	}
	return a.identity(snapshot)
}

func (a *Authenticator) Register(ctx context.Context, req auth.RegisterRequest) (auth.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.cost)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("memory auth: hash password: %w", err)
	}

	a.s.mu.Lock()
	if _, exists := a.s.users[req.Username]; exists {
		a.s.mu.Unlock()
		return auth.Identity{}, fmt.Errorf("%w: username %s", auth.ErrUserExists, req.Username)
	}
	if a.s.emailTakenByUserLocked(req.Email, "") {
		a.s.mu.Unlock()
		return auth.Identity{}, fmt.Errorf("%w: email %s", auth.ErrUserExists, req.Email)
	}
	u := a.s.addUserLocked(req.Username, req.Email, req.FirstName, req.LastName, req.Phone, hash, []string{"ROLE_USER"})
	snapshot := *u
	a.s.mu.Unlock()

	return a.identity(snapshot)
}

func (a *Authenticator) identity(u userRec) (auth.Identity, error) {
	now := a.s.tick()
	claims := tokenClaims{
		Roles: u.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("memory auth: sign token: %w", err)
	}
	return auth.Identity{
		Token:    token,
		Username: u.Username,
		Email:    u.Email,
		Roles:    auth.NormalizeRoles(u.Roles),
	}, nil
}

// addUserLocked: requiere s.mu tomado en escritura.
func (s *Store) addUserLocked(username, email, first, last, phoneNumber string, hash []byte, roles []string) *userRec {
	now := s.tick()
	s.nextUserID++
	u := &userRec{
		ID:           s.nextUserID,
		Username:     username,
		Email:        email,
		FirstName:    first,
		LastName:     last,
		Phone:        phoneNumber,
		PasswordHash: hash,
		Roles:        roles,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[username] = u
	return u
}
