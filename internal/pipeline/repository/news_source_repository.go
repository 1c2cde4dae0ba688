package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Anxten/senti-quant/internal/entity"
	"github.com/Anxten/senti-quant/pkg/logger"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// NewNewsSourceRepository creates a GORM-based news source repository.
func NewNewsSourceRepository(db *gorm.DB, log *logger.Logger) NewsSourceRepository {
	return &newsSourceRepository{
		db:            db,
		logger:        log,
		inmemoryCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

type newsSourceRepository struct {
	db     *gorm.DB
	logger *logger.Logger
	// inmemoryCache short-circuits repeat lookups for the same domain
	// within a run; sources are never deleted, so entries cannot go stale.
	inmemoryCache *cache.Cache
}

// Ensure returns the existing source for a domain or creates one with
// defaults (credibility 0.5, untrusted). Safe to call repeatedly.
func (r *newsSourceRepository) Ensure(ctx context.Context, domain string) (*entity.NewsSource, error) {
	if cached, found := r.inmemoryCache.Get(domain); found {
		return cached.(*entity.NewsSource), nil
	}

	var source entity.NewsSource
	err := r.db.WithContext(ctx).Where("domain = ?", domain).First(&source).Error
	if err == nil {
		r.inmemoryCache.Set(domain, &source, cache.DefaultExpiration)
		return &source, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up news source: %w", err)
	}

	r.logger.Info("New source detected", logger.StringField("domain", domain))
	source = entity.NewsSource{
		Domain:           domain,
		Name:             domain,
		CredibilityScore: 0.5,
		IsTrusted:        false,
	}
	if err := r.db.WithContext(ctx).Create(&source).Error; err != nil {
		// A concurrent run may have created the row between the lookup and
		// the insert; the unique domain index makes the re-read safe.
		var existing entity.NewsSource
		if lookupErr := r.db.WithContext(ctx).Where("domain = ?", domain).First(&existing).Error; lookupErr == nil {
			r.inmemoryCache.Set(domain, &existing, cache.DefaultExpiration)
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to create news source: %w", err)
	}

	r.inmemoryCache.Set(domain, &source, cache.DefaultExpiration)
	return &source, nil
}
