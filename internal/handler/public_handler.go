package handler

import (
	"errors"
	"html"
	"html/template"
	"net/http"
	"strings"

	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// Page bodies are plain text. Lines are escaped before the strict policy runs, so
// tag-like text is shown as written and never dropped.
var sanitizer = bluemonday.StrictPolicy()

const pageDateLayout = "January 2, 2006"

// ShowHome renders the landing page with the merged navigation.
func (a *API) ShowHome(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title": a.siteName,
	})
}

// ShowPage resolves the slug in the path and renders the stored page.
func (a *API) ShowPage(c *gin.Context) {
	slug := c.Param("slug")

	page, err := a.resolver.Resolve(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			a.renderHTML(c, http.StatusNotFound, "page.html", gin.H{
				"title": "Error",
				"slug":  slug,
				"error": "Page not found",
			})
			return
		}

		c.Error(err)
		a.renderHTML(c, http.StatusInternalServerError, "page.html", gin.H{
			"title": "Error",
			"slug":  slug,
			"error": "Error fetching page data",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "page.html", gin.H{
		"title":      page.Title,
		"slug":       page.Slug,
		"page":       page,
		"createdAt":  page.CreatedAt.Format(pageDateLayout),
		"paragraphs": renderParagraphs(page.Content),
	})
}

// renderParagraphs splits content into one escaped paragraph per line.
func renderParagraphs(content string) []template.HTML {
	lines := strings.Split(content, "\n")
	paragraphs := make([]template.HTML, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		paragraphs = append(paragraphs, template.HTML(sanitizer.Sanitize(html.EscapeString(line))))
	}
	return paragraphs
}
