package auth

import (
	"errors"
	"net/http"
	"outings/models"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath          = "/signin"
	LoginRequiredFlash = "Please log in to access this page."
)

var ErrUnauthorized = errors.New("login required")

// HandlerFunc is only called with a logged in user
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds auth checks + User pre-loading
type Router struct {
	Base gin.IRoutes
}

// RequireUser returns the logged in user or ErrUnauthorized
func RequireUser(c *gin.Context) (*models.User, error) {
	user := LoadSession(c).User()
	if user.ID == 0 {
		return nil, ErrUnauthorized
	}
	return &user, nil
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	user, err := RequireUser(c)
	if err != nil {
		LoadSession(c).Flash(LoginRequiredFlash)
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
		return
	}
	handler(c, user)
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
