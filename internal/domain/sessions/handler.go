package sessions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-admin-console/internal/platform/respond"
	"pet-admin-console/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc))
		ar.Post("/register", registerHandler(svc))
		ar.Post("/logout", logoutHandler(svc))
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// sessionResponse: el token del backend nunca se expone; el cliente usa
// sessionId como Bearer contra el gateway.
type sessionResponse struct {
	SessionID string    `json:"sessionId"`
	TokenType string    `json:"tokenType"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Autentica contra el backend y abre una sesión del gateway. El `sessionId` devuelto se envía luego como `Authorization: Bearer <sessionId>`.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} respond.ErrorBody "username/password vacíos"
// @Failure 401 {object} respond.ErrorBody "credenciales inválidas"
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, r, http.StatusBadRequest, "invalid json")
			return
		}

		sess, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Valida los datos (username 3..50, password >= 6, teléfono normalizado a `+7 XXX XXX XX XX`), registra en el backend y abre sesión.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de registro"
// @Success 201 {object} sessionResponse
// @Failure 400 {object} respond.ErrorBody "validación"
// @Failure 409 {object} respond.ErrorBody "usuario o email existente"
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, r, http.StatusBadRequest, "invalid json")
			return
		}

		sess, err := svc.Register(r.Context(), RegisterInput{
			Username:  req.Username,
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Elimina la sesión actual. Idempotente.
// @Tags auth
// @Param Authorization header string false "Bearer <sessionId>"
// @Success 204
// @Router /auth/logout [post]
func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := FromContext(r.Context()); ok {
			if err := svc.Logout(r.Context(), sess.ID); err != nil {
				respond.Error(w, r, http.StatusInternalServerError, "internal error")
				return
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		respond.Error(w, r, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, auth.ErrUserExists):
		respond.Error(w, r, http.StatusConflict, err.Error())
	default:
		if respond.BackendError(w, r, err) {
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}

func toSessionResponse(s Session) sessionResponse {
	roles := s.Roles
	if roles == nil {
		roles = []string{}
	}
	return sessionResponse{
		SessionID: s.ID,
		TokenType: "Bearer",
		Username:  s.Username,
		Email:     s.Email,
		Roles:     roles,
		ExpiresAt: s.ExpiresAt,
	}
}
