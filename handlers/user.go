package handlers

import (
	"errors"
	"net/http"
	"outings/auth"
	"outings/models"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SignupRequest struct {
	Email           string `form:"email" binding:"required"`
	FirstName       string `form:"fname" binding:"required"`
	LastName        string `form:"lname" binding:"required"`
	Password        string `form:"pass" binding:"required"`
	ConfirmPassword string `form:"confirmPass" binding:"required"`
	ClassYear       string `form:"classYear" binding:"required"`
}

type SigninRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"pass" binding:"required"`
}

func SignupForm(c *gin.Context) {
	render(c, http.StatusOK, "signup.tmpl", gin.H{"title": "Sign up", "form": SignupRequest{}})
}

func Signup(c *gin.Context) {
	postReq := SignupRequest{}
	fail := func(status int, message string) {
		render(c, status, "signup.tmpl", gin.H{"title": "Sign up", "form": postReq, "error": message})
	}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		fail(http.StatusBadRequest, MsgAllFieldsRequired)
		return
	}
	if postReq.Password != postReq.ConfirmPassword {
		fail(http.StatusBadRequest, MsgPasswordsMismatch)
		return
	}
	classYear, err := strconv.Atoi(strings.TrimSpace(postReq.ClassYear))
	if err != nil {
		fail(http.StatusBadRequest, MsgClassYearInvalid)
		return
	}
	_, err = models.UserCreate(postReq.Email, postReq.FirstName, postReq.LastName, postReq.Password, classYear)
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		fail(http.StatusConflict, MsgEmailExists)
		return
	case errors.Is(err, models.ErrPasswordTooLong):
		fail(http.StatusBadRequest, MsgPasswordTooLong)
		return
	case err != nil:
		renderServerError(c, err)
		return
	}
	auth.LoadSession(c).Flash(MsgAccountCreated)
	c.Redirect(http.StatusFound, auth.LoginPath)
}

func SigninForm(c *gin.Context) {
	render(c, http.StatusOK, "signin.tmpl", gin.H{"title": "Log in", "form": SigninRequest{}})
}

func Signin(c *gin.Context) {
	postReq := SigninRequest{}
	fail := func(status int, message string) {
		render(c, status, "signin.tmpl", gin.H{"title": "Log in", "form": SigninRequest{Email: postReq.Email}, "error": message})
	}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		fail(http.StatusBadRequest, MsgAllFieldsRequired)
		return
	}
	user, err := models.UserLogin(postReq.Email, postReq.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		fail(http.StatusUnauthorized, MsgBadCredentials)
		return
	}
	if err != nil {
		renderServerError(c, err)
		return
	}
	session := auth.LoadSession(c)
	if err = session.LoginUser(&user); err != nil {
		renderServerError(c, err)
		return
	}
	session.Flash(MsgLoggedIn)
	c.Redirect(http.StatusFound, "/places")
}

func Logout(c *gin.Context) {
	if err := auth.LoadSession(c).LogoutUser(); err != nil {
		renderServerError(c, err)
		return
	}
	render(c, http.StatusOK, "index.tmpl", nil)
}

func Account(c *gin.Context) {
	user, err := auth.RequireUser(c)
	if err != nil {
		auth.LoadSession(c).Flash(MsgNotLoggedIn)
		c.Redirect(http.StatusFound, "/home")
		return
	}
	render(c, http.StatusOK, "account.tmpl", gin.H{
		"title":     "Account",
		"user":      user,
		"fname":     user.FirstName,
		"lname":     user.LastName,
		"email":     user.Email,
		"classYear": user.ClassYear,
	})
}
