package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const sessionAdminKey = "admin"

// AdminGate compares a submitted password with the configured site secret. It is
// a single shared secret, not a user system.
type AdminGate struct {
	hash []byte
}

// NewAdminGate hashes secret once at start-up. An empty secret yields a gate that
// rejects every password.
func NewAdminGate(secret string) (*AdminGate, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		log.Println("[admin] ADMIN_PASSWORD is empty; page creation is disabled")
		return &AdminGate{}, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmed), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AdminGate{hash: hashed}, nil
}

// Enabled reports whether a secret was configured.
func (g *AdminGate) Enabled() bool {
	return len(g.hash) > 0
}

// Check reports whether password matches the configured secret.
func (g *AdminGate) Check(password string) bool {
	if !g.Enabled() || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(g.hash, []byte(password)) == nil
}

// ShowLoginPage 渲染管理员登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title":    "Admin Login",
		"disabled": !a.gate.Enabled(),
	})
}

// Login 校验管理员口令并写入会话
func (a *API) Login(c *gin.Context) {
	password := strings.TrimSpace(c.PostForm("password"))

	if !a.gate.Check(password) {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title":    "Admin Login",
			"error":    "Wrong password",
			"disabled": !a.gate.Enabled(),
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAdminKey, true)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Could not save session",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// Logout 清除管理员会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.Error(err)
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Could not clear session",
		})
		return
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

// AdminRequired 是一个简单的认证中间件
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if ok, _ := session.Get(sessionAdminKey).(bool); ok {
			c.Next()
			return
		}

		if wantsJSON(c) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
		} else {
			c.Redirect(http.StatusFound, "/admin/login")
		}
		c.Abort()
	}
}
