package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anxten/senti-quant/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewSentimentLogRepository creates a GORM-based sentiment log repository.
func NewSentimentLogRepository(db *gorm.DB) SentimentLogRepository {
	return &sentimentLogRepository{db: db}
}

type sentimentLogRepository struct {
	db *gorm.DB
}

// Save writes a scoring result unless the article already has one,
// enforcing at-most-one scoring per article even across pipeline re-runs.
func (r *sentimentLogRepository) Save(ctx context.Context, log *entity.SentimentLog) (Outcome, error) {
	var existing entity.SentimentLog
	err := r.db.WithContext(ctx).Select("id").Where("article_id = ?", log.ArticleID).First(&existing).Error
	if err == nil {
		return OutcomeAlreadyExists, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return OutcomeFailed, fmt.Errorf("failed to look up sentiment log: %w", err)
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "article_id"}},
		DoNothing: true,
	}).Create(log)
	if tx.Error != nil {
		return OutcomeFailed, fmt.Errorf("failed to insert sentiment log: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return OutcomeAlreadyExists, nil
	}
	return OutcomeCreated, nil
}
