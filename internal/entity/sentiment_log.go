package entity

import (
	"time"
)

// SentimentLog records one Truth Engine scoring result for an article.
// The unique index on ArticleID enforces the at-most-one-log-per-article
// invariant at the schema level, so concurrent runs race safely.
type SentimentLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ArticleID      uint      `gorm:"uniqueIndex;not null" json:"article_id"`
	SentimentScore float64   `gorm:"not null" json:"sentiment_score"`
	SentimentLabel string    `gorm:"size:20;not null" json:"sentiment_label"`
	Confidence     float64   `gorm:"not null" json:"confidence"`
	IntegrityScore float64   `gorm:"default:0" json:"integrity_score"`
	AnalyzedAt     time.Time `gorm:"autoCreateTime" json:"analyzed_at"`
}

// TableName specifies the table name for the SentimentLog model.
func (SentimentLog) TableName() string {
	return "sentiment_logs"
}
