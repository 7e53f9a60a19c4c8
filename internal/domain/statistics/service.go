package statistics

import (
	"context"

	"pet-admin-console/internal/domain/pets"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get garantiza que todos los tipos de mascota aparezcan en PetsByType,
// aunque el backend omita los que están en cero.
func (s *Service) Get(ctx context.Context) (Stats, error) {
	st, err := s.repo.Get(ctx)
	if err != nil {
		return Stats{}, err
	}
	if st.PetsByType == nil {
		st.PetsByType = make(map[pets.Type]int64, len(pets.Types))
	}
	for _, t := range pets.Types {
		if _, ok := st.PetsByType[t]; !ok {
			st.PetsByType[t] = 0
		}
	}
	return st, nil
}
