package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		// Antes de /{petID} para que "my" no se tome como id.
		pr.Get("/my", listMyPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// petRequest es el cuerpo de creación/actualización de una mascota.
type petRequest struct {
	Name        string `json:"name"`
	Type        Type   `json:"type" enums:"DOG,CAT,BIRD,FISH,RABBIT,HAMSTER,OTHER"`
	Breed       string `json:"breed"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
	Color       string `json:"color"`
	Description string `json:"description"`
	OwnerID     int64  `json:"ownerId"`
}

// Response es la mascota tal como la devuelve el gateway.
type Response struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        Type      `json:"type"`
	Breed       string    `json:"breed"`
	DateOfBirth string    `json:"dateOfBirth"`
	Age         int       `json:"age"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
	OwnerID     int64     `json:"ownerId"`
	OwnerName   string    `json:"ownerName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewResponse(p Pet, now time.Time) Response {
	dob := ""
	if !p.DateOfBirth.IsZero() {
		dob = p.DateOfBirth.Format(DateLayout)
	}
	return Response{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		DateOfBirth: dob,
		Age:         AgeAt(p.DateOfBirth, now),
		Color:       p.Color,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		OwnerName:   p.OwnerName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description `type` y `ownerId` los resuelve el backend; `search` filtra por nombre, raza o nombre del dueño (case-insensitive).
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param X-Debug-User header string false "Solo en modo dev"
// @Param type query string false "DOG, CAT, BIRD, FISH, RABBIT, HAMSTER, OTHER"
// @Param ownerId query int false "ID del dueño"
// @Param search query string false "Texto libre"
// @Success 200 {array} Response
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}

		q := r.URL.Query()
		f := ListFilter{Query: q.Get("search")}
		if raw := strings.TrimSpace(q.Get("type")); raw != "" {
			t, ok := ParseType(raw)
			if !ok {
				respond.Error(w, r, http.StatusBadRequest, "unknown pet type")
				return
			}
			f.Type = t
		}
		if raw := strings.TrimSpace(q.Get("ownerId")); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				respond.Error(w, r, http.StatusBadRequest, "ownerId must be a positive integer")
				return
			}
			f.OwnerID = id
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toResponses(items, svc.now()))
	}
}

// listMyPetsHandler godoc
// @Summary Mis mascotas
// @Description Mascotas del dueño vinculado al usuario de la sesión.
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Success 200 {array} Response
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "sin dueño vinculado"
// @Router /pets/my [get]
func listMyPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		items, err := svc.Mine(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toResponses(items, svc.now()))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} Response
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		id, ok := petID(w, r)
		if !ok {
			return
		}
		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, NewResponse(p, svc.now()))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Requiere rol ADMIN. `dateOfBirth` en formato YYYY-MM-DD y en el pasado.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} Response
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 403 {object} respond.ErrorBody
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}
		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, NewResponse(p, svc.now()))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Requiere rol ADMIN. Reemplaza todos los campos.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} Response
// @Failure 400 {object} respond.ErrorBody
// @Failure 403 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		id, ok := petID(w, r)
		if !ok {
			return
		}
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}
		p, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, NewResponse(p, svc.now()))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Requiere rol ADMIN.
// @Tags pets
// @Param Authorization header string false "Bearer <sessionId>"
// @Param petID path int true "ID de la mascota"
// @Success 204
// @Failure 403 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		id, ok := petID(w, r)
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

func decodeInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var req petRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return Input{}, false
	}

	var dob time.Time
	if s := strings.TrimSpace(req.DateOfBirth); s != "" {
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			respond.Error(w, r, http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
			return Input{}, false
		}
		dob = t
	}

	return Input{
		Name:        req.Name,
		Type:        req.Type,
		Breed:       req.Breed,
		DateOfBirth: dob,
		Color:       req.Color,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	}, true
}

func petID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, r, http.StatusBadRequest, "petID must be a positive integer")
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

func toResponses(items []Pet, now time.Time) []Response {
	out := make([]Response, 0, len(items))
	for _, p := range items {
		out = append(out, NewResponse(p, now))
	}
	return out
}
