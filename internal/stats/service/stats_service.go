package service

import (
	"context"

	"github.com/Anxten/senti-quant/internal/stats/dto"
	"github.com/Anxten/senti-quant/internal/stats/repository"
)

// StatsService exposes read-only aggregates over the pipeline tables.
type StatsService interface {
	GetOverview(ctx context.Context) (*dto.OverviewResponse, error)
	GetSentimentDistribution(ctx context.Context) (*dto.SentimentDistributionResponse, error)
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

type statsService struct {
	repo repository.StatsRepository
}

func (s *statsService) GetOverview(ctx context.Context) (*dto.OverviewResponse, error) {
	return s.repo.Overview(ctx)
}

func (s *statsService) GetSentimentDistribution(ctx context.Context) (*dto.SentimentDistributionResponse, error) {
	buckets, err := s.repo.SentimentDistribution(ctx)
	if err != nil {
		return nil, err
	}
	if buckets == nil {
		buckets = []dto.SentimentBucket{}
	}
	return &dto.SentimentDistributionResponse{Buckets: buckets}, nil
}
