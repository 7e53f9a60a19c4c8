// Package memory implementa el backend de desarrollo: dueños, mascotas,
// usuarios y sesiones en memoria, con las mismas reglas que el backend
// REST (emails únicos, borrado en cascada, tokens JWT firmados).
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/phone"
	"pet-admin-console/internal/ports/backend"
)

type userRec struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	PasswordHash []byte
	Roles        []string
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Store es el estado compartido por todos los repos del backend dev.
type Store struct {
	mu sync.RWMutex

	owners map[int64]owners.Owner
	pets   map[int64]pets.Pet
	users  map[string]*userRec // por username

	nextOwnerID int64
	nextPetID   int64
	nextUserID  int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		owners: make(map[int64]owners.Owner),
		pets:   make(map[int64]pets.Pet),
		users:  make(map[string]*userRec),
		now:    time.Now,
	}
}

func (s *Store) tick() time.Time {
	return s.now().UTC()
}

// currentUserLocked: requiere s.mu tomado (lectura o escritura).
func (s *Store) currentUserLocked(ctx context.Context) (*userRec, error) {
	sess, ok := sessions.FromContext(ctx)
	if !ok || strings.TrimSpace(sess.Username) == "" {
		return nil, backend.ErrUnauthorized
	}
	u, ok := s.users[sess.Username]
	if !ok {
		return nil, backend.ErrUnauthorized
	}
	return u, nil
}

func (s *Store) emailTakenByOwnerLocked(email string, exceptID int64) bool {
	for id, o := range s.owners {
		if id != exceptID && strings.EqualFold(o.Email, email) {
			return true
		}
	}
	return false
}

func (s *Store) phoneTakenByOwnerLocked(raw string, exceptID int64) bool {
	key := phone.E164(raw)
	if key == "" {
		return false
	}
	for id, o := range s.owners {
		if id != exceptID && phone.E164(o.Phone) == key {
			return true
		}
	}
	return false
}

func (s *Store) emailTakenByUserLocked(email, exceptUsername string) bool {
	for name, u := range s.users {
		if name != exceptUsername && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// petWithOwnerLocked completa OwnerName desde el dueño actual.
func (s *Store) petWithOwnerLocked(p pets.Pet) pets.Pet {
	if o, ok := s.owners[p.OwnerID]; ok {
		p.OwnerName = o.FullName()
	}
	return p
}

func (s *Store) ownerWithPetsLocked(o owners.Owner) owners.Owner {
	o.Pets = s.petsOfLocked(o.ID)
	return o
}

func (s *Store) petsOfLocked(ownerID int64) []pets.Pet {
	out := make([]pets.Pet, 0)
	for _, p := range s.pets {
		if p.OwnerID == ownerID {
			out = append(out, s.petWithOwnerLocked(p))
		}
	}
	sortPets(out)
	return out
}
