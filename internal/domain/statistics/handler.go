package statistics

import (
	"net/http"

	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/statistics", getStatisticsHandler(svc))
}

type statsResponse struct {
	TotalOwners         int64               `json:"totalOwners"`
	TotalPets           int64               `json:"totalPets"`
	PetsByType          map[pets.Type]int64 `json:"petsByType"`
	AveragePetsPerOwner int64               `json:"averagePetsPerOwner"`
}

// getStatisticsHandler godoc
// @Summary Estadísticas
// @Description Totales de dueños y mascotas, mascotas por tipo (todos los tipos presentes) y promedio entero de mascotas por dueño.
// @Tags statistics
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Success 200 {object} statsResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /statistics [get]
func getStatisticsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessions.FromContext(r.Context()); !ok {
			respond.Error(w, r, http.StatusUnauthorized, "unauthorized")
			return
		}
		st, err := svc.Get(r.Context())
		if err != nil {
			if respond.BackendError(w, r, err) {
				return
			}
			respond.Error(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		respond.JSON(w, http.StatusOK, statsResponse(st))
	}
}
