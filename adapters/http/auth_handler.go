package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/favorite-food/internal/application/usecase/auth"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

type AuthHandler struct {
	signUpUseCase  *auth.SignUpUseCase
	signInUseCase  *auth.SignInUseCase
	signOutUseCase *auth.SignOutUseCase
	logger         logger.Logger
}

func NewAuthHandler(signUp *auth.SignUpUseCase, signIn *auth.SignInUseCase, signOut *auth.SignOutUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		signUpUseCase:  signUp,
		signInUseCase:  signIn,
		signOutUseCase: signOut,
		logger:         log,
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(apperror.CodeInvalidArgument, "Invalid request body", "invalid JSON body for sign up", err))
		return
	}

	output, err := h.signUpUseCase.Execute(c.Request.Context(), auth.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToAuthResponse(output))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(apperror.CodeInvalidArgument, "Invalid request body", "invalid JSON body for sign in", err))
		return
	}

	output, err := h.signInUseCase.Execute(c.Request.Context(), auth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToAuthResponse(output))
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	sessionID, hasSession := GetSessionIDFromGinContext(c)
	if !ok || !hasSession {
		c.Error(apperror.NewUnauthenticated("session not found in context", nil))
		return
	}

	err := h.signOutUseCase.Execute(c.Request.Context(), auth.SignOutInput{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
