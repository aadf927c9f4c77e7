package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

// ListPages returns every stored page in creation order.
func (a *API) ListPages(c *gin.Context) {
	pages, err := a.pages.ListPages(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error reading pages")
		return
	}
	c.JSON(http.StatusOK, pages)
}

// GetPage returns a single page by slug.
func (a *API) GetPage(c *gin.Context) {
	page, err := a.resolver.Resolve(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageNotFound):
			respondError(c, http.StatusNotFound, "Page not found")
		default:
			respondError(c, http.StatusInternalServerError, "Error reading pages")
		}
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreatePage stores a new page from a JSON payload.
func (a *API) CreatePage(c *gin.Context) {
	var payload service.PageInput
	if !bindJSON(c, &payload, "Invalid page payload") {
		return
	}

	page, err := a.pages.CreatePage(c.Request.Context(), payload)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message(), "fields": verr.Fields})
		case errors.Is(err, service.ErrDuplicateSlug):
			respondError(c, http.StatusConflict, "Slug already exists")
		default:
			respondError(c, http.StatusInternalServerError, "Error creating page")
		}
		return
	}

	c.JSON(http.StatusCreated, page)
}

// NavLinks returns the header links: static entries followed by stored pages.
func (a *API) NavLinks(c *gin.Context) {
	links, err := a.resolver.NavLinks(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error reading pages")
		return
	}
	c.JSON(http.StatusOK, links)
}

// ShowPageEditor renders the admin form for creating a page.
func (a *API) ShowPageEditor(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin.html", gin.H{
		"title": "Create New Page",
		"form":  service.PageInput{},
	})
}

// SubmitPageForm handles the admin form post and re-renders the form with the outcome.
func (a *API) SubmitPageForm(c *gin.Context) {
	var input service.PageInput
	if err := c.ShouldBind(&input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "admin.html", gin.H{
			"title": "Create New Page",
			"form":  input,
			"error": "Invalid form submission",
		})
		return
	}

	page, err := a.pages.CreatePage(c.Request.Context(), input)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Error creating page"
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			status, message = http.StatusBadRequest, verr.Message()
		case errors.Is(err, service.ErrDuplicateSlug):
			status, message = http.StatusConflict, "Slug already exists"
		}

		a.renderHTML(c, status, "admin.html", gin.H{
			"title": "Create New Page",
			"form":  input,
			"error": message,
		})
		return
	}

	a.renderHTML(c, http.StatusCreated, "admin.html", gin.H{
		"title":   "Create New Page",
		"form":    service.PageInput{},
		"message": "Page created successfully",
		"created": page,
		"link":    service.PagePath(page.Slug),
	})
}
