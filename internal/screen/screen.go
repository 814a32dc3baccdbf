// Package screen holds the form state and actions of the Login, Register and
// Home screens. Rendering is left to the caller.
package screen

import (
	"context"
	"errors"

	"github.com/khoahotran/favorite-food/pkg/client"
	"github.com/khoahotran/favorite-food/pkg/validation"
)

type Navigation int

const (
	NavNone Navigation = iota
	NavLogin
	NavRegister
	NavHome
)

func (n Navigation) String() string {
	switch n {
	case NavLogin:
		return "login"
	case NavRegister:
		return "register"
	case NavHome:
		return "home"
	default:
		return "none"
	}
}

// Backend is the remote side of every screen action. *client.Client
// satisfies it.
type Backend interface {
	SignIn(ctx context.Context, email, password string) (client.Session, error)
	SignUp(ctx context.Context, email, password string) (client.Session, error)
	SignOut(ctx context.Context) error
	GetProfile(ctx context.Context) (*client.Profile, error)
	PutProfile(ctx context.Context, p client.Profile) (*client.Profile, error)
}

var _ Backend = (*client.Client)(nil)

func localize(msgs *Catalog, form string, errs validation.Errors) map[string]string {
	out := make(map[string]string, len(errs))
	for field, reason := range errs {
		out[field] = msgs.FieldError(form, field, reason)
	}
	return out
}

// serverMessage is the human readable part of a backend failure.
func serverMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
