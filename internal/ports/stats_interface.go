package ports

import (
	"bookstore-server/internal/model"
	"context"
)

type StatsRepository interface {
	Summary(ctx context.Context) (*model.StatsSummary, error)
}

type StatsService interface {
	Summary(ctx context.Context) (*model.StatsSummary, error)
}
