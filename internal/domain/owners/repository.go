package owners

import (
	"context"

	"pet-admin-console/internal/domain/pets"
)

type Repository interface {
	List(ctx context.Context) ([]Owner, error)
	GetByID(ctx context.Context, id int64) (Owner, error)
	Create(ctx context.Context, in Input) (Owner, error)
	Update(ctx context.Context, id int64, in Input) (Owner, error)
	Delete(ctx context.Context, id int64) error
	ListPets(ctx context.Context, ownerID int64) ([]pets.Pet, error)
}
