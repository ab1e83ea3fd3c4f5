package handlers

import (
	"errors"
	"net/http"
	"outings/models"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

var placeCategories = []string{"Food", "Coffee", "Nightlife", "Outdoors", "Shopping", "Entertainment", "Culture"}

// Place names become the first path segment, so they can't shadow other pages
var reservedPlaceNames = map[string]bool{
	"home":       true,
	"signup":     true,
	"signin":     true,
	"logout":     true,
	"account":    true,
	"places":     true,
	"newplace":   true,
	"outings":    true,
	"robots.txt": true,
}

type PlaceCreateRequest struct {
	Name        string `form:"name" binding:"required"`
	Location    string `form:"loc" binding:"required"`
	Category    string `form:"category" binding:"required,ne=Choose..."`
	Description string `form:"desc" binding:"required"`
}

func PlaceList(c *gin.Context) {
	places, err := models.PlaceList()
	if err != nil {
		renderServerError(c, err)
		return
	}
	render(c, http.StatusOK, "places.tmpl", gin.H{"title": "Places", "places": places})
}

func PlaceView(c *gin.Context) {
	place, err := models.PlaceByName(c.Param("placeName"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		renderNotFound(c, MsgPlaceNotFound)
		return
	}
	if err != nil {
		renderServerError(c, err)
		return
	}
	reviews, err := models.PlaceReviews(place.ID)
	if err != nil {
		renderServerError(c, err)
		return
	}
	summary := models.Summarize(reviews)
	render(c, http.StatusOK, "place.tmpl", gin.H{
		"title":            place.Name,
		"placeName":        place.Name,
		"placeLocation":    place.Location,
		"placeDescription": place.Description,
		"placeCategory":    place.Category,
		"placeRating":      summary.AvgRating,
		"placeBudget":      summary.AvgBudget,
		"reviews":          reviews,
	})
}

func PlaceNewForm(c *gin.Context, user *models.User) {
	renderPlaceForm(c, http.StatusOK, user, PlaceCreateRequest{}, "")
}

func PlaceNew(c *gin.Context, user *models.User) {
	postReq := PlaceCreateRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		renderPlaceForm(c, http.StatusBadRequest, user, postReq, MsgAllFieldsRequired)
		return
	}
	if !validPlaceName(postReq.Name) {
		renderPlaceForm(c, http.StatusBadRequest, user, postReq, MsgPlaceNameReserved)
		return
	}
	_, err := models.PlaceCreate(postReq.Name, postReq.Location, postReq.Category, postReq.Description)
	if errors.Is(err, models.ErrDuplicatePlace) {
		renderPlaceForm(c, http.StatusConflict, user, postReq, MsgPlaceExists)
		return
	}
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/places")
}

func renderPlaceForm(c *gin.Context, status int, user *models.User, form PlaceCreateRequest, message string) {
	render(c, status, "newplace.tmpl", gin.H{
		"title":      "Add a place",
		"user":       user,
		"form":       form,
		"categories": placeCategories,
		"error":      message,
	})
}

func validPlaceName(name string) bool {
	return !strings.Contains(name, "/") && !reservedPlaceNames[strings.ToLower(name)]
}
