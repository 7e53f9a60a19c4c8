package statistics

import "context"

type Repository interface {
	Get(ctx context.Context) (Stats, error)
}
