package web

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"placeURL": PlaceURL,
	"reviewURL": func(placeName string) string {
		return PlaceURL(placeName) + "/newReview"
	},
}

// Templates parses every page, each one is addressed by its file name (e.g. "place.tmpl")
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.tmpl"))
}

func PlaceURL(placeName string) string {
	return "/" + url.PathEscape(placeName)
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /account\nDisallow: /newplace\nDisallow: /logout\n")
}
