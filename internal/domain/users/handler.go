package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users/me", func(ur chi.Router) {
		ur.Get("/", getMeHandler(svc))
		ur.Put("/", updateMeHandler(svc))
		ur.Put("/password", changePasswordHandler(svc))
	})
}

type profileResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Roles     []string  `json:"roles"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type updateProfileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// getMeHandler godoc
// @Summary Perfil actual
// @Tags users
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Success 200 {object} profileResponse
// @Failure 401 {object} respond.ErrorBody
// @Router /users/me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		p, err := svc.Me(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// updateMeHandler godoc
// @Summary Actualizar perfil
// @Description El teléfono se normaliza y debe quedar como `+7 XXX XXX XX XX`.
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param payload body updateProfileRequest true "Perfil"
// @Success 200 {object} profileResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 409 {object} respond.ErrorBody "email existente"
// @Router /users/me [put]
func updateMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, r, http.StatusBadRequest, "invalid json")
			return
		}
		p, err := svc.UpdateProfile(r.Context(), ProfileInput(req))
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// changePasswordHandler godoc
// @Summary Cambiar contraseña
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <sessionId>"
// @Param payload body changePasswordRequest true "Contraseñas"
// @Success 200 {object} messageResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Router /users/me/password [put]
func changePasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(w, r) {
			return
		}
		var req changePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, r, http.StatusBadRequest, "invalid json")
			return
		}
		if err := svc.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword); err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, messageResponse{Message: "Password changed successfully"})
	}
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
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrWrongPassword):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, err.Error())
	default:
		if respond.BackendError(w, r, err) {
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}

func toProfileResponse(p Profile) profileResponse {
	roles := p.Roles
	if roles == nil {
		roles = []string{}
	}
	return profileResponse{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Roles:     roles,
		Enabled:   p.Enabled,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
