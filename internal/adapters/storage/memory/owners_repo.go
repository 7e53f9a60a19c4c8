package memory

import (
	"context"
	"sort"

	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/ports/backend"
)

type ownersRepo struct {
	s *Store
}

func NewOwnersRepo(s *Store) owners.Repository {
	return &ownersRepo{s: s}
}

func (r *ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.s.owners))
	for _, o := range r.s.owners {
		out = append(out, r.s.ownerWithPetsLocked(o))
	}

	// Orden estable por id asc (igual que el backend)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return r.s.ownerWithPetsLocked(o), nil
}

func (r *ownersRepo) Create(ctx context.Context, in owners.Input) (owners.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkUniqueLocked(in, 0); err != nil {
		return owners.Owner{}, err
	}

	now := r.s.tick()
	r.s.nextOwnerID++
	o := owners.Owner{
		ID:        r.s.nextOwnerID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.s.owners[o.ID] = o
	return r.s.ownerWithPetsLocked(o), nil
}

func (r *ownersRepo) Update(ctx context.Context, id int64, in owners.Input) (owners.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.owners[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	if err := r.checkUniqueLocked(in, id); err != nil {
		return owners.Owner{}, err
	}

	o.FirstName = in.FirstName
	o.LastName = in.LastName
	o.Email = in.Email
	o.Phone = in.Phone
	o.Address = in.Address
	o.UpdatedAt = r.s.tick()
	r.s.owners[id] = o
	return r.s.ownerWithPetsLocked(o), nil
}

// Delete borra en cascada las mascotas del dueño.
func (r *ownersRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[id]; !ok {
		return owners.ErrNotFound
	}
	delete(r.s.owners, id)
	for pid, p := range r.s.pets {
		if p.OwnerID == id {
			delete(r.s.pets, pid)
		}
	}
	return nil
}

func (r *ownersRepo) ListPets(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.owners[ownerID]; !ok {
		return nil, owners.ErrNotFound
	}
	return r.s.petsOfLocked(ownerID), nil
}

func (r *ownersRepo) checkUniqueLocked(in owners.Input, exceptID int64) error {
	if r.s.emailTakenByOwnerLocked(in.Email, exceptID) {
		return &backend.ConflictError{Message: "Email already exists: " + in.Email}
	}
	if r.s.phoneTakenByOwnerLocked(in.Phone, exceptID) {
		return &backend.ConflictError{Message: "Phone already exists: " + in.Phone}
	}
	return nil
}
