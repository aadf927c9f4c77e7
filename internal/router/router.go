package router

import (
	"html/template"
	"strings"

	"github.com/folio/internal/handler"
	"github.com/folio/internal/service"
	"github.com/folio/web"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestID())

	secret := strings.TrimSpace(sessionSecret)
	if secret == "" {
		secret = "folio-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 7 * 24 * 60 * 60})
	r.Use(sessions.Sessions("folio_session", store))

	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(web.Templates, "template/*.html")))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/pages", api.ListPages)
		apiGroup.GET("/pages/:slug", api.GetPage)
		apiGroup.GET("/nav", api.NavLinks)
		apiGroup.POST("/pages", handler.AdminRequired(), api.CreatePage)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AdminRequired())
		{
			auth.GET("", api.ShowPageEditor)
			auth.POST("/pages", api.SubmitPageForm)
		}
	}

	r.GET("/", api.ShowHome)
	r.GET("/:slug", api.ShowPage)

	return r
}

// requestID 为每个请求分配 ID，并写入响应头与请求上下文。
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(service.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
