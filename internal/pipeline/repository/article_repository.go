package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anxten/senti-quant/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewArticleRepository creates a GORM-based article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

type articleRepository struct {
	db *gorm.DB
}

// Save writes a new article row unless one already exists for the URL.
// A uniqueness conflict raced in by a concurrent run resolves to
// OutcomeAlreadyExists, never to a fault.
func (r *articleRepository) Save(ctx context.Context, article *entity.Article) (Outcome, error) {
	var existing entity.Article
	err := r.db.WithContext(ctx).Select("id").Where("url = ?", article.URL).First(&existing).Error
	if err == nil {
		return OutcomeAlreadyExists, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return OutcomeFailed, fmt.Errorf("failed to look up article by url: %w", err)
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		DoNothing: true,
	}).Create(article)
	if tx.Error != nil {
		return OutcomeFailed, fmt.Errorf("failed to insert article: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return OutcomeAlreadyExists, nil
	}
	return OutcomeCreated, nil
}

// FindUnprocessed returns up to limit articles with no sentiment log.
func (r *articleRepository) FindUnprocessed(ctx context.Context, limit int) ([]entity.Article, error) {
	var articles []entity.Article
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN sentiment_logs sl ON sl.article_id = articles.id").
		Where("sl.id IS NULL").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query unprocessed articles: %w", err)
	}
	return articles, nil
}
