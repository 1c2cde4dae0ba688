package entity

import (
	"time"
)

// NewsSource represents a publishing domain articles are scraped from.
type NewsSource struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Domain           string    `gorm:"size:100;uniqueIndex;not null" json:"domain"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	CredibilityScore float64   `gorm:"default:0.5" json:"credibility_score"`
	IsTrusted        bool      `gorm:"default:false" json:"is_trusted"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the NewsSource model.
func (NewsSource) TableName() string {
	return "news_sources"
}
