package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/folio/internal/db"
)

// PageInput carries the operator-supplied fields of a new page.
type PageInput struct {
	Title   string `json:"title" form:"title"`
	Slug    string `json:"slug" form:"slug"`
	Content string `json:"content" form:"content"`
}

// PageService owns the page collection. It is the only writer of the backend and
// serialises every read-modify-write behind mu.
//
// Each create rewrites the whole collection, so cost grows linearly with the number
// of pages. That is fine for a personal site; past db.MaxRecommendedPages a warning
// is logged on every create.
type PageService struct {
	mu      sync.Mutex
	backend db.Backend
	now     func() time.Time
}

// NewPageService returns a new PageService over backend.
func NewPageService(backend db.Backend) *PageService {
	return &PageService{
		backend: backend,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the creation clock, mainly for tests.
func (s *PageService) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	s.now = now
}

// ListPages returns every page in insertion order.
func (s *PageService) ListPages(ctx context.Context) ([]db.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages, err := s.load(ctx)
	if err != nil {
		logPages(ctx, "list failed: %v", err)
		return nil, err
	}
	return pages, nil
}

// GetBySlug fetches a page for a given slug.
func (s *PageService) GetBySlug(ctx context.Context, slug string) (*db.Page, error) {
	pages, err := s.ListPages(ctx)
	if err != nil {
		return nil, err
	}
	return findBySlug(pages, slug)
}

// routableSlug reports whether slug fits in one path segment of /:slug.
func routableSlug(slug string) bool {
	return !strings.Contains(slug, "/") && slug != "." && slug != ".."
}

// CreatePage validates input, appends a new page and persists the collection. The
// page is only visible to later reads once the backend confirmed the write.
func (s *PageService) CreatePage(ctx context.Context, input PageInput) (*db.Page, error) {
	title := strings.TrimSpace(input.Title)
	slug := strings.TrimSpace(input.Slug)
	content := input.Content

	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if slug == "" {
		missing = append(missing, "slug")
	}
	if strings.TrimSpace(content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	if !routableSlug(slug) {
		return nil, &ValidationError{Fields: []string{"slug"}, Reason: "Slug must be a single path segment"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pages, err := s.load(ctx)
	if err != nil {
		logPages(ctx, "create %q: %v", slug, err)
		return nil, err
	}

	var lastID int64
	for _, page := range pages {
		if page.Slug == slug {
			return nil, ErrDuplicateSlug
		}
		if page.ID > lastID {
			lastID = page.ID
		}
	}

	page := db.Page{
		ID:        lastID + 1,
		Title:     title,
		Slug:      slug,
		Content:   content,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	next := make([]db.Page, 0, len(pages)+1)
	next = append(next, pages...)
	next = append(next, page)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.backend.Save(ctx, next); err != nil {
		logPages(ctx, "create %q: persist failed: %v", slug, err)
		return nil, fmt.Errorf("%w: write pages: %w", ErrStorageUnavailable, err)
	}

	if len(next) > db.MaxRecommendedPages {
		logPages(ctx, "collection holds %d pages; every create rewrites all of them", len(next))
	}
	logPages(ctx, "created page id=%d slug=%q", page.ID, page.Slug)

	return &page, nil
}

func (s *PageService) load(ctx context.Context) ([]db.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pages, err := s.backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read pages: %w", ErrStorageUnavailable, err)
	}
	return pages, nil
}

func findBySlug(pages []db.Page, slug string) (*db.Page, error) {
	for i := range pages {
		if pages[i].Slug == slug {
			page := pages[i]
			return &page, nil
		}
	}
	return nil, ErrPageNotFound
}

// logPages 输出页面存储相关日志，附带请求 ID 便于排查。
func logPages(ctx context.Context, format string, args ...interface{}) {
	prefix := "[pages] "
	if id := RequestIDFromContext(ctx); id != "" {
		prefix = fmt.Sprintf("[pages %s] ", id)
	}
	log.Printf(prefix+format, args...)
}
