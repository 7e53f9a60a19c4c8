package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc))

		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Put("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))

		or.Get("/{ownerID}/pets", listOwnerPetsHandler(svc))
	})
}

// ownerRequest es el cuerpo de alta/edición. El teléfono puede venir en
// cualquier formato; se normaliza a +7 XXX XXX XX XX.
type ownerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// ownerResponse: phone/address enmascarados si masked=true.
type ownerResponse struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	PetCount  int             `json:"petCount"`
	Masked    bool            `json:"masked"`
	Pets      []pets.Response `json:"pets,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// listOwnersHandler godoc
// @Summary Listar dueños
// @Description `search` filtra por nombre completo o email (case-insensitive). Teléfono y dirección se enmascaran salvo para ADMIN.
// @Tags owners
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param X-Debug-User header string false "Solo en modo dev"
// @Param search query string false "Texto libre"
// @Success 200 {array} ownerResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		items, err := svc.List(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		views := svc.Views(r.Context(), items)
		out := make([]ownerResponse, 0, len(views))
		for _, v := range views {
			out = append(out, toOwnerResponse(v, nil))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getOwnerHandler godoc
// @Summary Obtener dueño
// @Tags owners
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param ownerID path int true "ID del dueño"
// @Success 200 {object} ownerResponse
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /owners/{ownerID} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		id, ok := ownerID(w, r)
		if !ok {
			return
		}
		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		v := svc.Views(r.Context(), []Owner{o})[0]
		respond.JSON(w, http.StatusOK, toOwnerResponse(v, o.Pets))
	}
}

// createOwnerHandler godoc
// @Summary Crear dueño
// @Description Requiere rol ADMIN. Todos los campos son obligatorios.
// @Tags owners
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 201 {object} ownerResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 403 {object} respond.ErrorBody
// @Failure 409 {object} respond.ErrorBody "email existente"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}
		o, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toOwnerResponse(NewView(o, true), nil))
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar dueño
// @Description Requiere rol ADMIN.
// @Tags owners
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param ownerID path int true "ID del dueño"
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 200 {object} ownerResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 403 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /owners/{ownerID} [put]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		id, ok := ownerID(w, r)
		if !ok {
			return
		}
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}
		o, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toOwnerResponse(NewView(o, true), nil))
	}
}

// deleteOwnerHandler godoc
// @Summary Eliminar dueño
// @Description Requiere rol ADMIN. El backend elimina también sus mascotas.
// @Tags owners
// @Param Authorization header string false "Bearer <sessionId>"
// @Param ownerID path int true "ID del dueño"
// @Success 204
// @Failure 403 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /owners/{ownerID} [delete]
func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		id, ok := ownerID(w, r)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listOwnerPetsHandler godoc
// @Summary Mascotas de un dueño
// @Tags owners
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param ownerID path int true "ID del dueño"
// @Success 200 {array} pets.Response
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /owners/{ownerID}/pets [get]
func listOwnerPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		id, ok := ownerID(w, r)
		if !ok {
			return
		}
		items, err := svc.Pets(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponses(items))
	}
}

func toOwnerResponse(v View, ownerPets []pets.Pet) ownerResponse {
	return ownerResponse{
		ID:        v.ID,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Email:     v.Email,
		Phone:     v.Phone,
		Address:   v.Address,
		PetCount:  v.PetCount,
		Masked:    v.Masked,
		Pets:      toPetResponses(ownerPets),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toPetResponses(items []pets.Pet) []pets.Response {
	now := time.Now()
	out := make([]pets.Response, 0, len(items))
	for _, p := range items {
		out = append(out, pets.NewResponse(p, now))
	}
	return out
}

func decodeInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return Input{}, false
	}
	return Input(req), true
}

func ownerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, r, http.StatusBadRequest, "ownerID must be a positive integer")
		return 0, false
	}
	return id, true
}

func authenticated(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := sessions.FromContext(r.Context()); !ok {
		respond.Error(w, r, http.StatusUnauthorized, "unauthorized")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		respond.Error(w, r, http.StatusForbidden, err.Error())
	default:
		if respond.BackendError(w, r, err) {
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
