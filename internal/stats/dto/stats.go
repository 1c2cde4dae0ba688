package dto

// OverviewResponse reports table-level counts for operators.
type OverviewResponse struct {
	Sources          int64   `json:"sources"`
	Articles         int64   `json:"articles"`
	ScoredArticles   int64   `json:"scored_articles"`
	UnscoredArticles int64   `json:"unscored_articles"`
	AvgIntegrity     float64 `json:"avg_integrity_score"`
}

// SentimentBucket is one label's share of the scored corpus.
type SentimentBucket struct {
	Label         string  `json:"label"`
	Count         int64   `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
	AvgIntegrity  float64 `json:"avg_integrity_score"`
}

// SentimentDistributionResponse is the label breakdown of all scored articles.
type SentimentDistributionResponse struct {
	Buckets []SentimentBucket `json:"buckets"`
}

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}
