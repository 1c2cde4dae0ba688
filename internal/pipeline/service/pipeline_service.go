package service

import (
	"context"
	"fmt"

	"github.com/Anxten/senti-quant/internal/entity"
	"github.com/Anxten/senti-quant/internal/pipeline/extractor"
	"github.com/Anxten/senti-quant/internal/pipeline/fetcher"
	"github.com/Anxten/senti-quant/internal/pipeline/repository"
	"github.com/Anxten/senti-quant/internal/pipeline/truth"
	"github.com/Anxten/senti-quant/pkg/logger"
)

// EngineFactory constructs the Truth Engine on demand. The orchestrator
// calls it only when unscored articles exist, so the classifier model is
// never loaded for an empty queue.
type EngineFactory func(ctx context.Context) (*truth.Engine, error)

// RunSummary reports per-stage counts for one pipeline run.
type RunSummary struct {
	Fetched     int
	Extracted   int
	Created     int
	Skipped     int
	Scored      int
	ScoreFailed int
}

// PipelineService orchestrates one end-to-end ingestion-and-scoring run.
type PipelineService struct {
	schemaRepo    repository.SchemaRepository
	logger        *logger.Logger
	fetcher       *fetcher.Fetcher
	sourceRepo    repository.NewsSourceRepository
	articleRepo   repository.ArticleRepository
	logRepo       repository.SentimentLogRepository
	engineFactory EngineFactory
	scoringLimit  int
}

// NewPipelineService creates the pipeline orchestrator.
func NewPipelineService(
	schemaRepo repository.SchemaRepository,
	log *logger.Logger,
	f *fetcher.Fetcher,
	sourceRepo repository.NewsSourceRepository,
	articleRepo repository.ArticleRepository,
	logRepo repository.SentimentLogRepository,
	engineFactory EngineFactory,
	scoringLimit int,
) *PipelineService {
	return &PipelineService{
		schemaRepo:    schemaRepo,
		logger:        log,
		fetcher:       f,
		sourceRepo:    sourceRepo,
		articleRepo:   articleRepo,
		logRepo:       logRepo,
		engineFactory: engineFactory,
		scoringLimit:  scoringLimit,
	}
}

// Run executes the full pipeline over the given URL set. Stage-local
// faults degrade to "skip this item"; only a classifier construction
// failure terminates the run, and rows ingested before it stay durable.
func (s *PipelineService) Run(ctx context.Context, urls []string) (*RunSummary, error) {
	summary := &RunSummary{}

	if err := s.schemaRepo.EnsureSchema(ctx); err != nil {
		return summary, fmt.Errorf("failed to ensure schema: %w", err)
	}

	records := s.fetchAndExtract(ctx, urls, summary)
	s.persistArticles(ctx, records, summary)

	s.logger.Info("Ingestion finished",
		logger.IntField("fetched", summary.Fetched),
		logger.IntField("extracted", summary.Extracted),
		logger.IntField("newly_saved", summary.Created),
		logger.IntField("skipped", summary.Skipped),
	)

	if err := s.scoreUnprocessed(ctx, summary); err != nil {
		return summary, err
	}

	s.logger.Info("Pipeline finished",
		logger.IntField("scored", summary.Scored),
		logger.IntField("score_failed", summary.ScoreFailed),
	)
	return summary, nil
}

func (s *PipelineService) fetchAndExtract(ctx context.Context, urls []string, summary *RunSummary) []*extractor.ScrapedArticle {
	results := s.fetcher.FetchAll(ctx, urls)

	var records []*extractor.ScrapedArticle
	for _, result := range results {
		if !result.Available {
			continue
		}
		summary.Fetched++

		record, err := extractor.Extract(result.Body, result.URL)
		if err != nil {
			s.logger.Warn("Extraction failed", logger.ErrorField(err), logger.StringField("url", result.URL))
			continue
		}
		summary.Extracted++
		records = append(records, record)
	}
	return records
}

func (s *PipelineService) persistArticles(ctx context.Context, records []*extractor.ScrapedArticle, summary *RunSummary) {
	for _, record := range records {
		source, err := s.sourceRepo.Ensure(ctx, record.SourceDomain)
		if err != nil {
			s.logger.Error("Failed to ensure news source", logger.ErrorField(err), logger.StringField("domain", record.SourceDomain))
			continue
		}

		publishedAt := record.PublishedAt
		article := &entity.Article{
			SourceID:    source.ID,
			URL:         record.URL,
			Title:       record.Title,
			Content:     record.Content,
			PublishedAt: &publishedAt,
		}

		outcome, err := s.articleRepo.Save(ctx, article)
		switch outcome {
		case repository.OutcomeCreated:
			summary.Created++
			s.logger.Info("Article saved", logger.StringField("url", record.URL))
		case repository.OutcomeAlreadyExists:
			summary.Skipped++
			s.logger.Info("Article already stored, skipping", logger.StringField("url", record.URL))
		default:
			s.logger.Error("Failed to save article", logger.ErrorField(err), logger.StringField("url", record.URL))
		}
	}
}

func (s *PipelineService) scoreUnprocessed(ctx context.Context, summary *RunSummary) error {
	queue, err := s.articleRepo.FindUnprocessed(ctx, s.scoringLimit)
	if err != nil {
		return fmt.Errorf("failed to load scoring queue: %w", err)
	}
	if len(queue) == 0 {
		s.logger.Info("No unscored articles, skipping classifier load")
		return nil
	}

	engine, err := s.engineFactory(ctx)
	if err != nil {
		return fmt.Errorf("failed to construct truth engine: %w", err)
	}

	for _, article := range queue {
		result, err := engine.Analyze(ctx, article.Content)
		if err != nil {
			summary.ScoreFailed++
			s.logger.Error("Failed to analyze article", logger.ErrorField(err), logger.IntField("article_id", int(article.ID)))
			continue
		}

		sentimentLog := &entity.SentimentLog{
			ArticleID:      article.ID,
			SentimentScore: float64(truth.SentimentScalar(result.SentimentLabel)),
			SentimentLabel: result.SentimentLabel,
			Confidence:     result.Confidence,
			IntegrityScore: result.IntegrityScore,
		}

		outcome, err := s.logRepo.Save(ctx, sentimentLog)
		switch outcome {
		case repository.OutcomeCreated:
			summary.Scored++
			s.logger.Info("Article scored",
				logger.IntField("article_id", int(article.ID)),
				logger.StringField("label", result.SentimentLabel),
				logger.Float64Field("integrity_score", result.IntegrityScore),
			)
		case repository.OutcomeAlreadyExists:
			s.logger.Info("Article already scored, skipping", logger.IntField("article_id", int(article.ID)))
		default:
			summary.ScoreFailed++
			s.logger.Error("Failed to save sentiment log", logger.ErrorField(err), logger.IntField("article_id", int(article.ID)))
		}
	}
	return nil
}
