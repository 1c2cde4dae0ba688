package repository

import (
	"context"

	"github.com/Anxten/senti-quant/internal/entity"

	"gorm.io/gorm"
)

// NewSchemaRepository creates a GORM-based schema repository.
func NewSchemaRepository(db *gorm.DB) SchemaRepository {
	return &schemaRepository{db: db}
}

type schemaRepository struct {
	db *gorm.DB
}

func (r *schemaRepository) EnsureSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(
		&entity.NewsSource{},
		&entity.Article{},
		&entity.SentimentLog{},
	)
}
