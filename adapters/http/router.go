package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/favorite-food/internal/domain/session"
	"github.com/khoahotran/favorite-food/pkg/auth"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

type RouterDeps struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	AccountHandler *AccountHandler
	JWTService     *auth.JWTService
	Sessions       session.Store
	Logger         logger.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(deps.Logger), ErrorMiddleware(deps.Logger))

	authMiddleware := AuthMiddleware(deps.JWTService, deps.Sessions, deps.Logger)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", deps.AuthHandler.SignUp)
			authGroup.POST("/signin", deps.AuthHandler.SignIn)
			authGroup.POST("/signout", authMiddleware, deps.AuthHandler.SignOut)
		}

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/profile", deps.ProfileHandler.GetProfile)
			private.PUT("/profile", deps.ProfileHandler.UpdateProfile)
			private.GET("/account/events", deps.AccountHandler.ListEvents)
		}
	}

	return router
}
