package handlers

import (
	"outings/auth"
	"outings/web"

	"github.com/gin-gonic/gin"
)

// Register expects the sessions middleware and HTML templates to be set up on router
func Register(router *gin.Engine) {
	authRouter := &auth.Router{Base: router}
	router.GET("/", Home)
	router.GET("/home", Home)
	router.GET("/outings", Outings)
	router.GET("/robots.txt", web.DisallowRobots)
	// User handlers
	router.GET("/signup", SignupForm)
	router.POST("/signup", Signup)
	router.GET("/signin", SigninForm)
	router.POST("/signin", Signin)
	router.GET("/logout", Logout)
	router.POST("/logout", Logout)
	router.GET("/account", Account) // redirects home itself instead of to the login page
	// Place handlers
	router.GET("/places", PlaceList)
	authRouter.GET("/newplace", PlaceNewForm)
	authRouter.POST("/newplace", PlaceNew)
	router.GET("/:placeName", PlaceView)
	// Review handlers
	authRouter.GET("/:placeName/newReview", ReviewNewForm)
	authRouter.POST("/:placeName/newReview", ReviewNew)
}
