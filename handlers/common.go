package handlers

import (
	"log"
	"net/http"
	"outings/auth"

	"github.com/gin-gonic/gin"
)

const (
	MsgAllFieldsRequired = "All fields are required."
	MsgPasswordsMismatch = "Passwords do not match."
	MsgPasswordTooLong   = "Password must be at most 72 bytes long."
	MsgClassYearInvalid  = "Class year must be a number."
	MsgEmailExists       = "Email address already exists"
	MsgAccountCreated    = "Account created. Please log in."
	MsgBadCredentials    = "Login credentials incorrect. Please try again."
	MsgLoggedIn          = "Successfully logged in."
	MsgNotLoggedIn       = "You are not logged in."
	MsgPlaceNotFound     = "Place not found."
	MsgPlaceNameReserved = "This name cannot be used for a place."
	MsgPlaceExists       = "A place with this name already exists."
	MsgRatingOutOfRange  = "Rating must be between 1 and 5."
	MsgBudgetInvalid     = "Budget must be a non-negative number."
)

// render adds the logged in user (for the navigation bar) and pending flashes to data
func render(c *gin.Context, status int, name string, data gin.H) {
	session := auth.LoadSession(c)
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["user"]; !ok {
		if user := session.User(); user.ID != 0 {
			data["user"] = &user
		}
	}
	data["flashes"] = session.TakeFlashes()
	c.HTML(status, name, data)
}

func renderNotFound(c *gin.Context, message string) {
	render(c, http.StatusNotFound, "not_found.tmpl", gin.H{"message": message})
}

func renderServerError(c *gin.Context, err error) {
	log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	render(c, http.StatusInternalServerError, "error.tmpl", nil)
}
