package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"pet-admin-console/internal/domain/pets"
)

type petRepo struct {
	s *Store
}

func NewPetRepo(s *Store) pets.Repository {
	return &petRepo{s: s}
}

func (r *petRepo) List(ctx context.Context, q pets.Query) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.s.pets))
	for _, p := range r.s.pets {
		if q.Type != "" && p.Type != q.Type {
			continue
		}
		if q.OwnerID != 0 && p.OwnerID != q.OwnerID {
			continue
		}
		out = append(out, r.s.petWithOwnerLocked(p))
	}
	sortPets(out)
	return out, nil
}

// ListMine vincula usuario y dueño por email.
func (r *petRepo) ListMine(ctx context.Context) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, err := r.s.currentUserLocked(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range r.s.owners {
		if strings.EqualFold(o.Email, u.Email) {
			return r.s.petsOfLocked(o.ID), nil
		}
	}
	return []pets.Pet{}, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return r.s.petWithOwnerLocked(p), nil
}

func (r *petRepo) Create(ctx context.Context, in pets.Input) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[in.OwnerID]; !ok {
		return pets.Pet{}, ownerMissing(in.OwnerID)
	}

	now := r.s.tick()
	r.s.nextPetID++
	p := pets.Pet{
		ID:          r.s.nextPetID,
		Name:        in.Name,
		Type:        in.Type,
		Breed:       in.Breed,
		DateOfBirth: in.DateOfBirth,
		Color:       in.Color,
		Description: in.Description,
		OwnerID:     in.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.s.pets[p.ID] = p
	return r.s.petWithOwnerLocked(p), nil
}

func (r *petRepo) Update(ctx context.Context, id int64, in pets.Input) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	if _, ok := r.s.owners[in.OwnerID]; !ok {
		return pets.Pet{}, ownerMissing(in.OwnerID)
	}

	p.Name = in.Name
	p.Type = in.Type
	p.Breed = in.Breed
	p.DateOfBirth = in.DateOfBirth
	p.Color = in.Color
	p.Description = in.Description
	p.OwnerID = in.OwnerID
	p.UpdatedAt = r.s.tick()
	r.s.pets[id] = p
	return r.s.petWithOwnerLocked(p), nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.s.pets, id)
	return nil
}

// Orden estable por id asc (solo para consistencia en dev)
func sortPets(items []pets.Pet) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}

func ownerMissing(id int64) error {
	return fmt.Errorf("%w: ownerId: owner %d not found", pets.ErrInvalidInput, id)
}
