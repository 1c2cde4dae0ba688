package entity

import (
	"time"
)

// Article represents one scraped news page. Rows are immutable once written;
// the URL is the sole deduplication key for ingestion.
type Article struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SourceID    uint       `gorm:"not null" json:"source_id"`
	URL         string     `gorm:"uniqueIndex;not null" json:"url"`
	Title       string     `gorm:"not null" json:"title"`
	Content     string     `gorm:"not null" json:"content"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ScrapedAt   time.Time  `gorm:"autoCreateTime" json:"scraped_at"`
}

// TableName specifies the table name for the Article model.
func (Article) TableName() string {
	return "articles"
}
