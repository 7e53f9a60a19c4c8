package rest

import (
	"context"

	"pet-admin-console/internal/domain/statistics"
	"pet-admin-console/internal/platform/httpclient"
)

type statisticsRepo struct {
	c *Client
}

func NewStatisticsRepo(c *Client) statistics.Repository {
	return &statisticsRepo{c: c}
}

func (r *statisticsRepo) Get(ctx context.Context) (statistics.Stats, error) {
	var out statsDTO
	if err := r.c.do(ctx, httpclient.Request{Path: "/statistics"}, &out, nil, nil); err != nil {
		return statistics.Stats{}, err
	}
	return out.toDomain(), nil
}
