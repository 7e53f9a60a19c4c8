package memory

import (
	"fmt"
	"strings"
	"time"

	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin crea (o reemplaza la contraseña de) un usuario ADMIN.
func (s *Store) SeedAdmin(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("memory seed: admin username and password required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("memory seed: hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[username]; ok {
		u.PasswordHash = hash
		return nil
	}
	s.addUserLocked(username, username+"@example.com", "Admin", "Admin", "", hash, []string{"ROLE_ADMIN", "ROLE_USER"})
	return nil
}

// SeedDemo carga algunos dueños y mascotas para probar búsqueda y
// enmascarado sin backend.
func (s *Store) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.tick()
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	demo := []struct {
		owner owners.Owner
		pets  []pets.Pet
	}{
		{
			owner: owners.Owner{FirstName: "Anna", LastName: "Ivanova", Email: "anna@example.com", Phone: "+7 999 123 45 99", Address: "Moscow, Tverskaya 1"},
			pets: []pets.Pet{
				{Name: "Rex", Type: pets.TypeDog, Breed: "German Shepherd", DateOfBirth: day(2019, time.March, 2), Color: "black"},
				{Name: "Murka", Type: pets.TypeCat, Breed: "Siamese", DateOfBirth: day(2021, time.July, 14)},
			},
		},
		{
			owner: owners.Owner{FirstName: "Petr", LastName: "Petrov", Email: "petr@example.com", Phone: "+7 916 555 12 34", Address: "Saint Petersburg, Nevsky 10"},
			pets: []pets.Pet{
				{Name: "Kesha", Type: pets.TypeBird, Breed: "Budgie", DateOfBirth: day(2022, time.January, 5)},
			},
		},
		{
			owner: owners.Owner{FirstName: "Olga", LastName: "Sidorova", Email: "olga@example.com", Phone: "+7 926 000 11 22", Address: "Kazan"},
		},
	}

	for _, d := range demo {
		s.nextOwnerID++
		o := d.owner
		o.ID = s.nextOwnerID
		o.CreatedAt, o.UpdatedAt = now, now
		s.owners[o.ID] = o

		for _, p := range d.pets {
			s.nextPetID++
			p.ID = s.nextPetID
			p.OwnerID = o.ID
			p.CreatedAt, p.UpdatedAt = now, now
			s.pets[p.ID] = p
		}
	}
}
