package memory

import (
	"context"

	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/statistics"
)

type statisticsRepo struct {
	s *Store
}

func NewStatisticsRepo(s *Store) statistics.Repository {
	return &statisticsRepo{s: s}
}

func (r *statisticsRepo) Get(ctx context.Context) (statistics.Stats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	byType := make(map[pets.Type]int64, len(pets.Types))
	for _, p := range r.s.pets {
		byType[p.Type]++
	}
	return statistics.Compute(int64(len(r.s.owners)), byType), nil
}
