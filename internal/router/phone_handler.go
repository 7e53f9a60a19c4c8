package router

import (
	"net/http"

	"pet-admin-console/internal/phone"
	"pet-admin-console/internal/platform/respond"
)

type phoneFormatResponse struct {
	Formatted  string `json:"formatted"`
	Normalized string `json:"normalized"`
	Digits     string `json:"digits"`
	Valid      bool   `json:"valid"`
	E164       string `json:"e164,omitempty"`
}

// phoneFormatHandler godoc
// @Summary Formatear teléfono
// @Description Formateo por keystroke para inputs del navegador. Nunca falla: una entrada parcial devuelve la agrupación parcial.
// @Tags phone
// @Produce json
// @Param value query string false "valor crudo del input"
// @Success 200 {object} phoneFormatResponse
// @Router /phone/format [get]
func phoneFormatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("value")
		_, err := phone.Validate(raw)
		respond.JSON(w, http.StatusOK, phoneFormatResponse{
			Formatted:  phone.FormatPhoneNumber(raw),
			Normalized: phone.NormalizePhoneNumber(raw),
			Digits:     phone.GetPhoneDigits(raw),
			Valid:      err == nil,
			E164:       phone.E164(raw),
		})
	}
}
