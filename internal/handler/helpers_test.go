package handler

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/folio/internal/db"
	"github.com/folio/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

type stubHTMLRender struct {
	last *stubHTMLInstance
}

type stubHTMLInstance struct {
	name string
	data gin.H
}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	payload, _ := data.(gin.H)
	r.last = &stubHTMLInstance{name: name, data: payload}
	return r.last
}

func (r *stubHTMLInstance) Render(w http.ResponseWriter) error {
	_, err := w.Write([]byte(r.name))
	return err
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

var errBrokenBackend = errors.New("disk unplugged")

type brokenBackend struct{}

func (brokenBackend) Load(context.Context) ([]db.Page, error) {
	return nil, errBrokenBackend
}

func (brokenBackend) Save(context.Context, []db.Page) error {
	return errBrokenBackend
}

func setupTestAPI(t *testing.T, password string) (*API, *service.PageService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend, err := db.OpenFile(filepath.Join(t.TempDir(), "pages.json"))
	if err != nil {
		t.Fatalf("failed to open page file: %v", err)
	}

	pages := service.NewPageService(backend)
	pages.SetClock(func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	})

	gate, err := NewAdminGate(password)
	if err != nil {
		t.Fatalf("failed to build admin gate: %v", err)
	}

	return NewAPI(pages, gate, "Test Site"), pages
}

func newTestRouter(api *API, htmlRender *stubHTMLRender) *gin.Engine {
	r := gin.New()
	r.HTMLRender = htmlRender
	r.Use(sessions.Sessions("folio_session", cookie.NewStore([]byte("test-secret"))))

	r.GET("/api/pages", api.ListPages)
	r.GET("/api/pages/:slug", api.GetPage)
	r.GET("/api/nav", api.NavLinks)
	r.POST("/api/pages", AdminRequired(), api.CreatePage)

	r.GET("/admin/login", api.ShowLoginPage)
	r.POST("/admin/login", api.Login)
	r.GET("/admin/logout", api.Logout)
	r.GET("/admin", AdminRequired(), api.ShowPageEditor)
	r.POST("/admin/pages", AdminRequired(), api.SubmitPageForm)

	r.GET("/", api.ShowHome)
	r.GET("/:slug", api.ShowPage)
	return r
}
