package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/platform/httpclient"
)

type petsRepo struct {
	c *Client
}

func NewPetsRepo(c *Client) pets.Repository {
	return &petsRepo{c: c}
}

func (r *petsRepo) List(ctx context.Context, q pets.Query) ([]pets.Pet, error) {
	query := url.Values{}
	if q.Type != "" {
		query.Set("type", string(q.Type))
	}
	if q.OwnerID > 0 {
		query.Set("ownerId", strconv.FormatInt(q.OwnerID, 10))
	}

	var out []petDTO
	if err := r.c.do(ctx, httpclient.Request{Path: "/pets", Query: query}, &out, nil, pets.ErrInvalidInput); err != nil {
		return nil, err
	}
	return petsToDomain(out), nil
}

func (r *petsRepo) ListMine(ctx context.Context) ([]pets.Pet, error) {
	var out []petDTO
	if err := r.c.do(ctx, httpclient.Request{Path: "/pets/my"}, &out, pets.ErrNotFound, nil); err != nil {
		return nil, err
	}
	return petsToDomain(out), nil
}

func (r *petsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var out petDTO
	if err := r.c.do(ctx, httpclient.Request{Path: petPath(id)}, &out, pets.ErrNotFound, nil); err != nil {
		return pets.Pet{}, err
	}
	return out.toDomain(), nil
}

func (r *petsRepo) Create(ctx context.Context, in pets.Input) (pets.Pet, error) {
	var out petDTO
	err := r.c.do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/pets",
		Body:   toPetRequest(in),
	}, &out, pets.ErrInvalidInput, pets.ErrInvalidInput)
	if err != nil {
		return pets.Pet{}, err
	}
	return out.toDomain(), nil
}

func (r *petsRepo) Update(ctx context.Context, id int64, in pets.Input) (pets.Pet, error) {
	var out petDTO
	err := r.c.do(ctx, httpclient.Request{
		Method: http.MethodPut,
		Path:   petPath(id),
		Body:   toPetRequest(in),
	}, &out, pets.ErrNotFound, pets.ErrInvalidInput)
	if err != nil {
		return pets.Pet{}, err
	}
	return out.toDomain(), nil
}

func (r *petsRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, httpclient.Request{Method: http.MethodDelete, Path: petPath(id)}, nil, pets.ErrNotFound, nil)
}

func toPetRequest(in pets.Input) petRequestDTO {
	return petRequestDTO{
		Name:        in.Name,
		Type:        in.Type,
		Breed:       in.Breed,
		DateOfBirth: date(in.DateOfBirth),
		Color:       in.Color,
		Description: in.Description,
		OwnerID:     in.OwnerID,
	}
}

func petPath(id int64) string {
	return fmt.Sprintf("/pets/%d", id)
}
