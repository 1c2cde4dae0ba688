package repository

import (
	"context"

	"github.com/Anxten/senti-quant/internal/entity"
)

// Outcome is the tri-state result of an idempotent write. Duplicate
// detection is a first-class outcome, not an error-handling side effect.
type Outcome int

const (
	// OutcomeFailed means the write did not happen; the accompanying error
	// carries the reason. No partial row survives a failed call.
	OutcomeFailed Outcome = iota
	// OutcomeCreated means a new row was written.
	OutcomeCreated
	// OutcomeAlreadyExists means an identical row was already present and
	// the call was a no-op.
	OutcomeAlreadyExists
)

// String returns a short name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeAlreadyExists:
		return "already_exists"
	default:
		return "failed"
	}
}

// SchemaRepository creates missing tables and indexes. Safe to run at the
// start of every pipeline run.
type SchemaRepository interface {
	EnsureSchema(ctx context.Context) error
}

// NewsSourceRepository manages publishing-domain rows.
type NewsSourceRepository interface {
	// Ensure returns the source row for a domain, creating it with defaults
	// on first sighting. Repeated calls return the same identity.
	Ensure(ctx context.Context, domain string) (*entity.NewsSource, error)
}

// ArticleRepository manages scraped article rows. The article URL is the
// deduplication boundary for ingestion.
type ArticleRepository interface {
	Save(ctx context.Context, article *entity.Article) (Outcome, error)
	// FindUnprocessed returns up to limit articles that have no sentiment
	// log yet, in store-default order. This is the scoring work queue.
	FindUnprocessed(ctx context.Context, limit int) ([]entity.Article, error)
}

// SentimentLogRepository manages scoring results. The article identity is
// the deduplication boundary for scoring.
type SentimentLogRepository interface {
	Save(ctx context.Context, log *entity.SentimentLog) (Outcome, error)
}
