package rest

import (
	"context"
	"fmt"
	"net/http"

	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/platform/httpclient"
)

type ownersRepo struct {
	c *Client
}

func NewOwnersRepo(c *Client) owners.Repository {
	return &ownersRepo{c: c}
}

func (r *ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	var out []ownerDTO
	if err := r.c.do(ctx, httpclient.Request{Path: "/owners"}, &out, nil, nil); err != nil {
		return nil, err
	}
	items := make([]owners.Owner, 0, len(out))
	for _, d := range out {
		items = append(items, d.toDomain())
	}
	return items, nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	var out ownerDTO
	if err := r.c.do(ctx, httpclient.Request{Path: ownerPath(id)}, &out, owners.ErrNotFound, nil); err != nil {
		return owners.Owner{}, err
	}
	return out.toDomain(), nil
}

func (r *ownersRepo) Create(ctx context.Context, in owners.Input) (owners.Owner, error) {
	var out ownerDTO
	err := r.c.do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/owners",
		Body:   ownerRequestDTO(in),
	}, &out, nil, owners.ErrInvalidInput)
	if err != nil {
		return owners.Owner{}, err
	}
	return out.toDomain(), nil
}

func (r *ownersRepo) Update(ctx context.Context, id int64, in owners.Input) (owners.Owner, error) {
	var out ownerDTO
	err := r.c.do(ctx, httpclient.Request{
		Method: http.MethodPut,
		Path:   ownerPath(id),
		Body:   ownerRequestDTO(in),
	}, &out, owners.ErrNotFound, owners.ErrInvalidInput)
	if err != nil {
		return owners.Owner{}, err
	}
	return out.toDomain(), nil
}

func (r *ownersRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, httpclient.Request{Method: http.MethodDelete, Path: ownerPath(id)}, nil, owners.ErrNotFound, nil)
}

func (r *ownersRepo) ListPets(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	var out []petDTO
	if err := r.c.do(ctx, httpclient.Request{Path: ownerPath(ownerID) + "/pets"}, &out, owners.ErrNotFound, nil); err != nil {
		return nil, err
	}
	return petsToDomain(out), nil
}

func ownerPath(id int64) string {
	return fmt.Sprintf("/owners/%d", id)
}
