package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	render(c, http.StatusOK, "index.tmpl", nil)
}

func Outings(c *gin.Context) {
	render(c, http.StatusOK, "outings.tmpl", gin.H{"title": "Outings"})
}
