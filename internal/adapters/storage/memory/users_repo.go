package memory

import (
	"context"
	"fmt"

	"pet-admin-console/internal/domain/users"
	"pet-admin-console/internal/ports/auth"
	"pet-admin-console/internal/ports/backend"

	"golang.org/x/crypto/bcrypt"
)

type usersRepo struct {
	s    *Store
	cost int
}

func NewUsersRepo(s *Store) users.Repository {
	return &usersRepo{s: s, cost: bcrypt.DefaultCost}
}

func (r *usersRepo) Me(ctx context.Context) (users.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, err := r.s.currentUserLocked(ctx)
	if err != nil {
		return users.Profile{}, err
	}
	return toProfile(u), nil
}

func (r *usersRepo) UpdateProfile(ctx context.Context, in users.ProfileInput) (users.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, err := r.s.currentUserLocked(ctx)
	if err != nil {
		return users.Profile{}, err
	}
	if r.s.emailTakenByUserLocked(in.Email, u.Username) {
		return users.Profile{}, &backend.ConflictError{Message: "Email already exists: " + in.Email}
	}

	u.Email = in.Email
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Phone = in.Phone
	u.UpdatedAt = r.s.tick()
	return toProfile(u), nil
}

func (r *usersRepo) ChangePassword(ctx context.Context, current, next string) error {
	r.s.mu.RLock()
	u, err := r.s.currentUserLocked(ctx)
	var hash []byte
	if err == nil {
		hash = u.PasswordHash
	}
	r.s.mu.RUnlock()
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(current)) != nil {
		return users.ErrWrongPassword
	}
	newHash, err := bcrypt.GenerateFromPassword([]byte(next), r.cost)
	if err != nil {
		return fmt.Errorf("memory users: hash password: %w", err)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, err = r.s.currentUserLocked(ctx)
	if err != nil {
		return err
	}
	u.PasswordHash = newHash
	u.UpdatedAt = r.s.tick()
	return nil
}

func toProfile(u *userRec) users.Profile {
	return users.Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Roles:     auth.NormalizeRoles(u.Roles),
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
