package repository

import (
	"bookstore-server/config"
	"bookstore-server/internal/model"
	"bookstore-server/internal/util"
	"context"

	"github.com/jmoiron/sqlx"
)

type StatsRepository struct {
	*config.Database
}

func NewStatsRepository(database *config.Database) *StatsRepository {
	return &StatsRepository{database}
}

// Summary : сводные счётчики по основным таблицам
func (r *StatsRepository) Summary(ctx context.Context) (*model.StatsSummary, error) {
	query := `SELECT
				(SELECT COUNT(*) FROM users) AS users,
				(SELECT COUNT(*) FROM books) AS books,
				(SELECT COUNT(*) FROM orders) AS orders`

	var summary model.StatsSummary
	if err := sqlx.GetContext(ctx, r.DB, &summary, query); err != nil {
		return nil, util.Unavailable("[StatsRepo] не удалось собрать сводку", err)
	}
	return &summary, nil
}
