package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/statistics"
	"pet-admin-console/internal/domain/users"
	"pet-admin-console/internal/ports/auth"
)

// timestamp acepta RFC3339 y la fecha-hora sin zona que emite el backend
// (2025-01-31T10:20:30.123).
type timestamp time.Time

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*t = timestamp{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			*t = timestamp(v)
			return nil
		}
	}
	return fmt.Errorf("rest backend: unsupported timestamp %q", s)
}

func (t timestamp) Time() time.Time { return time.Time(t) }

// date es LocalDate (YYYY-MM-DD).
type date time.Time

func (d *date) UnmarshalJSON(b []byte) error {
	var s string
	if bytes.Equal(b, []byte("null")) {
		*d = date{}
		return nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*d = date{}
		return nil
	}
	v, err := time.Parse(pets.DateLayout, s)
	if err != nil {
		return fmt.Errorf("rest backend: unsupported date %q", s)
	}
	*d = date(v)
	return nil
}

func (d date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(pets.DateLayout))
}

type ownerDTO struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Pets      []petDTO  `json:"pets"`
	CreatedAt timestamp `json:"createdAt"`
	UpdatedAt timestamp `json:"updatedAt"`
}

type ownerRequestDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (d ownerDTO) toDomain() owners.Owner {
	o := owners.Owner{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Address:   d.Address,
		CreatedAt: d.CreatedAt.Time(),
		UpdatedAt: d.UpdatedAt.Time(),
	}
	if d.Pets != nil {
		o.Pets = petsToDomain(d.Pets)
	}
	return o
}

type petDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        pets.Type `json:"type"`
	Breed       string    `json:"breed"`
	DateOfBirth date      `json:"dateOfBirth"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"ownerId"`
	OwnerName   string    `json:"ownerName"`
	CreatedAt   timestamp `json:"createdAt"`
	UpdatedAt   timestamp `json:"updatedAt"`
}

type petRequestDTO struct {
	Name        string    `json:"name"`
	Type        pets.Type `json:"type"`
	Breed       string    `json:"breed"`
	DateOfBirth date      `json:"dateOfBirth"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
	OwnerID     int64     `json:"ownerId"`
}

func (d petDTO) toDomain() pets.Pet {
	return pets.Pet{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		Breed:       d.Breed,
		DateOfBirth: time.Time(d.DateOfBirth),
		Color:       d.Color,
		Description: d.Description,
		OwnerID:     d.OwnerID,
		OwnerName:   d.OwnerName,
		CreatedAt:   d.CreatedAt.Time(),
		UpdatedAt:   d.UpdatedAt.Time(),
	}
}

func petsToDomain(items []petDTO) []pets.Pet {
	out := make([]pets.Pet, 0, len(items))
	for _, d := range items {
		out = append(out, d.toDomain())
	}
	return out
}

type statsDTO struct {
	TotalOwners         int64            `json:"totalOwners"`
	TotalPets           int64            `json:"totalPets"`
	PetsByType          map[string]int64 `json:"petsByType"`
	AveragePetsPerOwner int64            `json:"averagePetsPerOwner"`
}

func (d statsDTO) toDomain() statistics.Stats {
	byType := make(map[pets.Type]int64, len(d.PetsByType))
	for k, v := range d.PetsByType {
		if t, ok := pets.ParseType(k); ok {
			byType[t] = v
		}
	}
	return statistics.Stats{
		TotalOwners:         d.TotalOwners,
		TotalPets:           d.TotalPets,
		PetsByType:          byType,
		AveragePetsPerOwner: d.AveragePetsPerOwner,
	}
}

type authResponseDTO struct {
	Token    string   `json:"token"`
	Type     string   `json:"type"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type profileDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Roles     []string  `json:"roles"`
	Enabled   bool      `json:"enabled"`
	CreatedAt timestamp `json:"createdAt"`
	UpdatedAt timestamp `json:"updatedAt"`
}

func (d profileDTO) toDomain() users.Profile {
	return users.Profile{
		ID:        d.ID,
		Username:  d.Username,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
		Roles:     auth.NormalizeRoles(d.Roles),
		Enabled:   d.Enabled,
		CreatedAt: d.CreatedAt.Time(),
		UpdatedAt: d.UpdatedAt.Time(),
	}
}
