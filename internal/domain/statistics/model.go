package statistics

import "pet-admin-console/internal/domain/pets"

type Stats struct {
	TotalOwners         int64
	TotalPets           int64
	PetsByType          map[pets.Type]int64
	AveragePetsPerOwner int64
}

// Compute arma Stats a partir de conteos crudos.
// El promedio es división entera (0 sin dueños), como en el backend.
func Compute(totalOwners int64, byType map[pets.Type]int64) Stats {
	s := Stats{
		TotalOwners: totalOwners,
		PetsByType:  make(map[pets.Type]int64, len(pets.Types)),
	}
	for _, t := range pets.Types {
		n := byType[t]
		s.PetsByType[t] = n
		s.TotalPets += n
	}
	if totalOwners > 0 {
		s.AveragePetsPerOwner = s.TotalPets / totalOwners
	}
	return s
}
