package service

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/ports"
	"context"
)

type StatsService struct {
	statsRepository ports.StatsRepository
}

func NewStatsService(statsRepository ports.StatsRepository) *StatsService {
	return &StatsService{statsRepository: statsRepository}
}

// Summary : сводка для админки — сколько пользователей, книг и заказов
func (s *StatsService) Summary(ctx context.Context) (*model.StatsSummary, error) {
	return s.statsRepository.Summary(ctx)
}
