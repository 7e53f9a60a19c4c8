// Package rest habla con el backend REST de gestión de mascotas.
// Cada request lleva el JWT del backend guardado en la sesión del contexto.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/platform/httpclient"
	"pet-admin-console/internal/ports/backend"
)

var ErrNotConfigured = errors.New("rest backend: base url not configured")

type Config struct {
	// BaseURL incluye el prefijo de la API, p.ej. http://backend:8081/api
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("rest backend: %w", err)
	}
	return &Client{http: hc}, nil
}

// do ejecuta req con el token de la sesión (si hay) y traduce el status:
// 404 => notFound, 400 => invalid, 401/403/409/5xx => errores compartidos.
func (c *Client) do(ctx context.Context, req httpclient.Request, out any, notFound, invalid error) error {
	if s, ok := sessions.FromContext(ctx); ok && req.Bearer == "" {
		req.Bearer = s.BackendToken
	}

	err := c.http.Do(ctx, req, out)
	if err == nil {
		return nil
	}

	var he *httpclient.HTTPError
	if !errors.As(err, &he) {
		return fmt.Errorf("%w: %v", backend.ErrUnavailable, err)
	}

	switch {
	case he.StatusCode == http.StatusNotFound && notFound != nil:
		return notFound
	case he.StatusCode == http.StatusBadRequest && invalid != nil:
		return fmt.Errorf("%w: %s", invalid, he.Message)
	case he.StatusCode == http.StatusUnauthorized:
		return backend.ErrUnauthorized
	case he.StatusCode == http.StatusForbidden:
		return backend.ErrForbidden
	case he.StatusCode == http.StatusConflict:
		return &backend.ConflictError{Message: he.Message}
	case he.StatusCode >= 500:
		return fmt.Errorf("%w: %v", backend.ErrUnavailable, he)
	default:
		return fmt.Errorf("rest backend: %w", he)
	}
}
