package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NewInvalidCredential("bad password", nil), http.StatusUnauthorized},
		{NewUnauthenticated("no token", nil), http.StatusUnauthorized},
		{NewConflict(CodeEmailInUse, "account", "email", "a@b.co"), http.StatusConflict},
		{NewNotFound(CodeProfileNotFound, "profile", "42"), http.StatusNotFound},
		{NewInvalidInput(CodeWeakPassword, "weak", "", nil), http.StatusBadRequest},
		{NewInternal("boom", errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NewNotFound(CodeNotFound, "x", "y")), http.StatusNotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToHTTPStatus(tc.err), tc.err.Error())
	}
}

func TestFrom(t *testing.T) {
	orig := NewInvalidCredential("x", nil)
	assert.Same(t, orig, From(fmt.Errorf("sign in: %w", orig)))

	internal := From(errors.New("disk full"))
	assert.ErrorIs(t, internal, ErrInternal)
	assert.Equal(t, CodeInternal, internal.Code)
}

func TestToJSON(t *testing.T) {
	e := NewInvalidCredential("x", nil)
	assert.Equal(t, gin.H{"error": CodeInvalidCredential, "message": "Email or password is incorrect"}, e.ToJSON())

	bare := &AppError{BaseError: ErrInternal, Message: "oops"}
	assert.Equal(t, CodeInternal, bare.ToJSON()["error"])
}
