package repository

import (
	"context"
	"fmt"

	"github.com/Anxten/senti-quant/internal/entity"
	"github.com/Anxten/senti-quant/internal/stats/dto"

	"gorm.io/gorm"
)

// StatsRepository reads aggregate counts from the pipeline tables. It never
// writes; the stats service is a read-only consumer of persisted results.
type StatsRepository interface {
	Overview(ctx context.Context) (*dto.OverviewResponse, error)
	SentimentDistribution(ctx context.Context) ([]dto.SentimentBucket, error)
}

// NewStatsRepository creates a GORM-based stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

type statsRepository struct {
	db *gorm.DB
}

func (r *statsRepository) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	var overview dto.OverviewResponse

	if err := r.db.WithContext(ctx).Model(&entity.NewsSource{}).Count(&overview.Sources).Error; err != nil {
		return nil, fmt.Errorf("failed to count sources: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&entity.Article{}).Count(&overview.Articles).Error; err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&entity.SentimentLog{}).Count(&overview.ScoredArticles).Error; err != nil {
		return nil, fmt.Errorf("failed to count sentiment logs: %w", err)
	}
	overview.UnscoredArticles = overview.Articles - overview.ScoredArticles

	err := r.db.WithContext(ctx).Model(&entity.SentimentLog{}).
		Select("COALESCE(AVG(integrity_score), 0)").
		Scan(&overview.AvgIntegrity).Error
	if err != nil {
		return nil, fmt.Errorf("failed to average integrity scores: %w", err)
	}

	return &overview, nil
}

func (r *statsRepository) SentimentDistribution(ctx context.Context) ([]dto.SentimentBucket, error) {
	var buckets []dto.SentimentBucket
	err := r.db.WithContext(ctx).Model(&entity.SentimentLog{}).
		Select("sentiment_label AS label, COUNT(*) AS count, AVG(confidence) AS avg_confidence, AVG(integrity_score) AS avg_integrity").
		Group("sentiment_label").
		Order("count DESC").
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query sentiment distribution: %w", err)
	}
	return buckets, nil
}
