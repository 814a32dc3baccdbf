package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/khoahotran/favorite-food/internal/domain/session"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/auth"
	"github.com/khoahotran/favorite-food/pkg/validation"
)

var tracer = otel.Tracer("auth_usecase")

// AuthOutput is returned by every operation that opens a session.
type AuthOutput struct {
	AccessToken string
	UserID      uuid.UUID
	ExpiresAt   time.Time
}

func openSession(ctx context.Context, sessions session.Store, jwtSvc *auth.JWTService, userID uuid.UUID) (*AuthOutput, error) {
	sessionID, err := session.NewID()
	if err != nil {
		return nil, apperror.NewInternal("failed to generate session id", err)
	}

	token, expiresAt, err := jwtSvc.GenerateToken(userID, sessionID)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	err = sessions.Create(ctx, session.Session{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to store session", err)
	}

	return &AuthOutput{AccessToken: token, UserID: userID, ExpiresAt: expiresAt}, nil
}

// credentialError turns form errors into the first matching wire error.
func credentialError(errs validation.Errors) error {
	switch errs[validation.FieldEmail] {
	case validation.ReasonRequired, validation.ReasonInvalidEmail:
		return apperror.NewInvalidInput(apperror.CodeInvalidEmail, "The email address is badly formatted", "email: "+errs[validation.FieldEmail], nil)
	}
	switch errs[validation.FieldPassword] {
	case validation.ReasonRequired:
		return apperror.NewInvalidInput(apperror.CodeMissingPassword, "A password is required", "password: required", nil)
	case validation.ReasonWeakPassword:
		return apperror.NewInvalidInput(apperror.CodeWeakPassword,
			"Password must be at least 8 characters and include upper and lower case letters, a number and a symbol",
			"password: weak", nil)
	case validation.ReasonTooLong:
		return apperror.NewInvalidInput(apperror.CodePasswordTooLong,
			"Password must be at most 72 bytes long",
			"password: too_long", nil)
	case validation.ReasonTooShort:
		return apperror.NewInvalidCredential("password shorter than minimum", nil)
	}
	return nil
}
