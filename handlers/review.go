package handlers

import (
	"errors"
	"net/http"
	"outings/models"
	"outings/web"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

var ratingChoices = []string{"1", "2", "3", "4", "5"}

// ReviewCreateRequest has no author field, reviews are always written as the logged in user
type ReviewCreateRequest struct {
	Rating  string `form:"rating" binding:"required,ne=Choose..."`
	Budget  string `form:"budget" binding:"required"`
	Content string `form:"content" binding:"required"`
}

func ReviewNewForm(c *gin.Context, user *models.User) {
	place, ok := loadPlace(c)
	if !ok {
		return
	}
	renderReviewForm(c, http.StatusOK, user, &place, ReviewCreateRequest{}, "")
}

func ReviewNew(c *gin.Context, user *models.User) {
	place, ok := loadPlace(c)
	if !ok {
		return
	}
	postReq := ReviewCreateRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		renderReviewForm(c, http.StatusBadRequest, user, &place, postReq, MsgAllFieldsRequired)
		return
	}
	rating, err := strconv.Atoi(strings.TrimSpace(postReq.Rating))
	if err != nil || rating < models.MinRating || rating > models.MaxRating {
		renderReviewForm(c, http.StatusBadRequest, user, &place, postReq, MsgRatingOutOfRange)
		return
	}
	budget, err := strconv.Atoi(strings.TrimSpace(postReq.Budget))
	if err != nil || budget < 0 {
		renderReviewForm(c, http.StatusBadRequest, user, &place, postReq, MsgBudgetInvalid)
		return
	}
	if _, err = models.ReviewCreate(&place, user, rating, budget, postReq.Content); err != nil {
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, web.PlaceURL(place.Name))
}

// loadPlace renders the not found page itself when the place is missing
func loadPlace(c *gin.Context) (models.Place, bool) {
	place, err := models.PlaceByName(c.Param("placeName"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		renderNotFound(c, MsgPlaceNotFound)
		return place, false
	}
	if err != nil {
		renderServerError(c, err)
		return place, false
	}
	return place, true
}

func renderReviewForm(c *gin.Context, status int, user *models.User, place *models.Place, form ReviewCreateRequest, message string) {
	render(c, status, "newreview.tmpl", gin.H{
		"title":     "Review " + place.Name,
		"user":      user,
		"placeName": place.Name,
		"form":      form,
		"ratings":   ratingChoices,
		"error":     message,
	})
}
