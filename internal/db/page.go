package db

import (
	"context"
	"time"
)

// MaxRecommendedPages is the collection size above which a full rewrite per create
// stops being a sensible trade-off. Crossing it is logged, not enforced.
const MaxRecommendedPages = 500

// Page is a single operator-created content page.
type Page struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title     string    `json:"title" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime:false"`
}

// Backend persists the full page collection. Save always receives the whole
// collection in insertion order; Load returns it the same way.
type Backend interface {
	Load(ctx context.Context) ([]Page, error)
	Save(ctx context.Context, pages []Page) error
}
