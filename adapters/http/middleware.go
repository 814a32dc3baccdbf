package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/internal/domain/session"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/auth"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

const (
	GinContextKeyUserID    = "userID"
	GinContextKeySessionID = "sessionID"
)

func abortUnauthenticated(c *gin.Context, details string, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apperror.NewUnauthenticated(details, err).ToJSON())
}

// AuthMiddleware accepts a bearer token only while its session is still stored.
func AuthMiddleware(jwtSvc *auth.JWTService, sessions session.Store, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, "Authorization header is required", nil)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			abortUnauthenticated(c, "Invalid token format", nil)
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			abortUnauthenticated(c, "Invalid or expired token", err)
			return
		}

		sess, err := sessions.Get(c.Request.Context(), claims.SessionID())
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				log.Error("Failed to load session", err, zap.String("user_id", claims.UserID.String()))
				c.Error(apperror.NewInternal("failed to load session", err))
				c.Abort()
				return
			}
			abortUnauthenticated(c, "Session has ended", nil)
			return
		}
		if sess.UserID != claims.UserID || sess.Expired(time.Now()) {
			abortUnauthenticated(c, "Session does not match token", nil)
			return
		}

		c.Set(GinContextKeyUserID, claims.UserID)
		c.Set(GinContextKeySessionID, sess.ID)

		c.Next()
	}
}

func GetUserIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	return userID, ok
}

func GetSessionIDFromGinContext(c *gin.Context) (string, bool) {
	id := c.GetString(GinContextKeySessionID)
	return id, id != ""
}

// ErrorMiddleware renders the last error a handler attached with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := apperror.From(c.Errors.Last().Err)
		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", appErr,
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
			)
		}

		if !c.Writer.Written() {
			c.JSON(status, appErr.ToJSON())
		}
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
