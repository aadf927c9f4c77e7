package handler

import (
	"strings"
	"time"

	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	pages    *service.PageService
	resolver *service.PageResolver
	gate     *AdminGate
	siteName string
	now      func() time.Time
}

// NewAPI constructs a handler set over the page store.
func NewAPI(pages *service.PageService, gate *AdminGate, siteName string) *API {
	name := strings.TrimSpace(siteName)
	if name == "" {
		name = "Folio"
	}
	if gate == nil {
		gate = &AdminGate{}
	}

	return &API{
		pages:    pages,
		resolver: service.NewPageResolver(pages, nil),
		gate:     gate,
		siteName: name,
		now:      time.Now,
	}
}

func (a *API) navLinks(c *gin.Context) []service.NavLink {
	links, err := a.resolver.NavLinks(c.Request.Context())
	if err != nil {
		// 页面存储不可用时仍展示静态链接。
		c.Error(err)
		return service.DefaultNavLinks
	}
	return links
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = a.siteName
	}
	if _, exists := payload["navLinks"]; !exists {
		payload["navLinks"] = a.navLinks(c)
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = a.now().Year()
	}

	c.HTML(status, template, payload)
}
