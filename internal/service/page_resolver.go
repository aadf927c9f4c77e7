package service

import (
	"context"
	"net/url"

	"github.com/folio/internal/db"
)

// PageLister is the read side of the page store.
type PageLister interface {
	ListPages(ctx context.Context) ([]db.Page, error)
}

// NavLink is a single header navigation entry.
type NavLink struct {
	Title string `json:"title"`
	URL   string `json:"href"`
}

// DefaultNavLinks are the statically declared header links.
var DefaultNavLinks = []NavLink{
	{Title: "Projects", URL: "/projects"},
	{Title: "Film Music", URL: "/film-music"},
	{Title: "Library Music", URL: "/library-music"},
	{Title: "Commercial Music", URL: "/commercial-music"},
}

// PageResolver maps slugs to pages by scanning a fresh listing on every call.
type PageResolver struct {
	pages  PageLister
	static []NavLink
}

// NewPageResolver builds a resolver over pages. A nil static list falls back to
// DefaultNavLinks.
func NewPageResolver(pages PageLister, static []NavLink) *PageResolver {
	if static == nil {
		static = DefaultNavLinks
	}
	return &PageResolver{pages: pages, static: static}
}

// Resolve returns the first page whose slug matches exactly.
func (r *PageResolver) Resolve(ctx context.Context, slug string) (*db.Page, error) {
	pages, err := r.pages.ListPages(ctx)
	if err != nil {
		return nil, err
	}
	return findBySlug(pages, slug)
}

// NavLinks returns the static links followed by one link per stored page.
func (r *PageResolver) NavLinks(ctx context.Context) ([]NavLink, error) {
	pages, err := r.pages.ListPages(ctx)
	if err != nil {
		return nil, err
	}

	links := make([]NavLink, 0, len(r.static)+len(pages))
	links = append(links, r.static...)
	for _, page := range pages {
		links = append(links, NavLink{Title: page.Title, URL: PagePath(page.Slug)})
	}
	return links, nil
}

// PagePath is the public path of the page with slug.
func PagePath(slug string) string {
	return "/" + url.PathEscape(slug)
}
