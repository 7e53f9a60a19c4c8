package pets

import "context"

// Query son los filtros que resuelve el backend; el texto libre se
// filtra localmente (ver Service.List).
type Query struct {
	Type    Type
	OwnerID int64
}

type Repository interface {
	List(ctx context.Context, q Query) ([]Pet, error)
	// ListMine: mascotas del owner vinculado al usuario de la sesión.
	ListMine(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Create(ctx context.Context, in Input) (Pet, error)
	Update(ctx context.Context, id int64, in Input) (Pet, error)
	Delete(ctx context.Context, id int64) error
}
