package screen

import (
	"context"
	"time"

	"github.com/khoahotran/favorite-food/pkg/client"
)

type fakeBackend struct {
	signInErr  error
	signUpErr  error
	signOutErr error
	getErr     error
	putErr     error

	profile *client.Profile
	calls   []string

	// loadingDuringCall samples the screen's Loading flag inside each call.
	loadingDuringCall func() bool
	sawLoading        bool
}

func (f *fakeBackend) record(name string) {
	f.calls = append(f.calls, name)
	if f.loadingDuringCall != nil {
		f.sawLoading = f.loadingDuringCall()
	}
}

func (f *fakeBackend) SignIn(_ context.Context, email, _ string) (client.Session, error) {
	f.record("SignIn")
	if f.signInErr != nil {
		return client.Session{}, f.signInErr
	}
	return client.Session{AccessToken: "tok", UserID: email, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeBackend) SignUp(_ context.Context, email, _ string) (client.Session, error) {
	f.record("SignUp")
	if f.signUpErr != nil {
		return client.Session{}, f.signUpErr
	}
	return client.Session{AccessToken: "tok", UserID: email, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeBackend) SignOut(context.Context) error {
	f.record("SignOut")
	return f.signOutErr
}

func (f *fakeBackend) GetProfile(context.Context) (*client.Profile, error) {
	f.record("GetProfile")
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.profile == nil {
		return nil, client.ErrProfileNotFound
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeBackend) PutProfile(_ context.Context, p client.Profile) (*client.Profile, error) {
	f.record("PutProfile")
	if f.putErr != nil {
		return nil, f.putErr
	}
	p.UpdatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f.profile = &p
	out := p
	return &out, nil
}
