package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/plantkeeper/internal/client/api"
	"github.com/iudanet/plantkeeper/internal/client/auth"
	"github.com/iudanet/plantkeeper/internal/client/storage"
	pkgapi "github.com/iudanet/plantkeeper/pkg/api"
)

func testSession() *storage.AuthData {
	return &storage.AuthData{
		Email:        "gardener@example.com",
		UserID:       "user-1",
		DisplayName:  "Gardener",
		ZipCode:      "10001",
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    testNow.Add(15 * time.Minute).Unix(),
	}
}

func TestCli_runRegister_Interactive(t *testing.T) {
	tc := newTestCli(t, "gardener@example.com", "secret123", "secret123", "Gardener", "10001")
	tc.auth.RegisterFunc = func(ctx context.Context, in auth.RegisterInput) (*storage.AuthData, error) {
		return testSession(), nil
	}

	err := tc.cli.runRegister(context.Background(), RegisterFlags{})
	require.NoError(t, err)

	require.Len(t, tc.auth.RegisterCalls(), 1)
	assert.Equal(t, auth.RegisterInput{
		Email:       "gardener@example.com",
		Password:    "secret123",
		DisplayName: "Gardener",
		ZipCode:     "10001",
	}, tc.auth.RegisterCalls()[0].In)

	assert.Contains(t, tc.out.String(), "Registration successful")
	assert.Contains(t, tc.out.String(), "Welcome, Gardener!")
}

func TestCli_runRegister_PasswordMismatch(t *testing.T) {
	tc := newTestCli(t, "gardener@example.com", "secret123", "secret124")

	err := tc.cli.runRegister(context.Background(), RegisterFlags{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
	assert.Empty(t, tc.auth.RegisterCalls())
}

// С паролем из флага подтверждение не запрашивается
func TestCli_runRegister_Flags(t *testing.T) {
	tc := newTestCli(t)
	tc.auth.RegisterFunc = func(ctx context.Context, in auth.RegisterInput) (*storage.AuthData, error) {
		return testSession(), nil
	}

	err := tc.cli.runRegister(context.Background(), RegisterFlags{
		Passwords:   Passwords{FromArgs: "secret123"},
		Email:       "gardener@example.com",
		DisplayName: "Gardener",
		ZipCode:     "10001",
	})
	require.NoError(t, err)
	assert.Empty(t, tc.io.ReadPasswordCalls())
	assert.Empty(t, tc.io.ReadInputCalls())
}

func TestCli_runRegister_ServerError(t *testing.T) {
	tc := newTestCli(t)
	conflict := &api.APIError{Err: api.ErrConflict, StatusCode: 409, Message: "An account with this email already exists."}
	tc.auth.RegisterFunc = func(ctx context.Context, in auth.RegisterInput) (*storage.AuthData, error) {
		return nil, conflict
	}

	err := tc.cli.runRegister(context.Background(), RegisterFlags{
		Passwords: Passwords{FromArgs: "secret123"},
		Email:     "gardener@example.com", DisplayName: "Gardener", ZipCode: "10001",
	})
	require.ErrorIs(t, err, api.ErrConflict)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCli_runLogin(t *testing.T) {
	tc := newTestCli(t, "gardener@example.com", "secret123")
	tc.auth.LoginFunc = func(ctx context.Context, email, password string) (*storage.AuthData, error) {
		return testSession(), nil
	}

	require.NoError(t, tc.cli.runLogin(context.Background(), LoginFlags{}))

	require.Len(t, tc.auth.LoginCalls(), 1)
	assert.Equal(t, "gardener@example.com", tc.auth.LoginCalls()[0].Email)
	assert.Equal(t, "secret123", tc.auth.LoginCalls()[0].Password)
	assert.Contains(t, tc.out.String(), "Logged in as Gardener <gardener@example.com>")
}

func TestCli_runLogin_Failed(t *testing.T) {
	tc := newTestCli(t)
	tc.auth.LoginFunc = func(ctx context.Context, email, password string) (*storage.AuthData, error) {
		return nil, &api.APIError{Err: api.ErrUnauthorized, StatusCode: 401, Message: "Invalid email or password."}
	}

	err := tc.cli.runLogin(context.Background(), LoginFlags{Email: "a@b.co", Passwords: Passwords{FromArgs: "x"}})
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid email or password.")
}

func TestCli_runLogout(t *testing.T) {
	tc := newTestCli(t)
	tc.auth.LogoutFunc = func(ctx context.Context) error { return nil }

	require.NoError(t, tc.cli.runLogout(context.Background()))
	assert.Contains(t, tc.out.String(), "Logout successful")
}

func TestCli_runLogout_NotLoggedIn(t *testing.T) {
	tc := newTestCli(t)
	tc.auth.LogoutFunc = func(ctx context.Context) error { return auth.ErrNotLoggedIn }

	require.NoError(t, tc.cli.runLogout(context.Background()))
	assert.Contains(t, tc.out.String(), "not logged in")
}

func TestCli_runLogout_Error(t *testing.T) {
	tc := newTestCli(t)
	tc.auth.LogoutFunc = func(ctx context.Context) error { return errors.New("disk full") }

	require.Error(t, tc.cli.runLogout(context.Background()))
}

func TestCli_runStatus(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		tc := newTestCli(t)
		tc.auth.CurrentFunc = func(ctx context.Context) (*storage.AuthData, error) {
			return nil, storage.ErrAuthNotFound
		}

		require.NoError(t, tc.cli.runStatus(context.Background()))
		assert.Contains(t, tc.out.String(), "Not authenticated")
	})

	t.Run("authenticated", func(t *testing.T) {
		tc := newTestCli(t)
		tc.auth.CurrentFunc = func(ctx context.Context) (*storage.AuthData, error) {
			return testSession(), nil
		}

		require.NoError(t, tc.cli.runStatus(context.Background()))
		out := tc.out.String()
		assert.Contains(t, out, "Status: Authenticated")
		assert.Contains(t, out, "gardener@example.com")
		assert.Contains(t, out, "expires in 15m0s")
	})

	t.Run("expired token", func(t *testing.T) {
		tc := newTestCli(t)
		session := testSession()
		session.ExpiresAt = testNow.Add(-time.Minute).Unix()
		tc.auth.CurrentFunc = func(ctx context.Context) (*storage.AuthData, error) {
			return session, nil
		}

		require.NoError(t, tc.cli.runStatus(context.Background()))
		assert.Contains(t, tc.out.String(), "expired")
	})

	t.Run("storage error", func(t *testing.T) {
		tc := newTestCli(t)
		tc.auth.CurrentFunc = func(ctx context.Context) (*storage.AuthData, error) {
			return nil, errors.New("bolt closed")
		}

		require.Error(t, tc.cli.runStatus(context.Background()))
	})
}

func TestCli_runProfile(t *testing.T) {
	user := &pkgapi.UserResponse{ID: "user-1", Email: "gardener@example.com", DisplayName: "Gardener", ZipCode: "10001"}

	t.Run("show", func(t *testing.T) {
		tc := newTestCli(t)
		tc.auth.ProfileFunc = func(ctx context.Context) (*pkgapi.UserResponse, error) { return user, nil }

		require.NoError(t, tc.cli.runProfile(context.Background(), ProfileFlags{}))
		assert.Contains(t, tc.out.String(), "10001")
		assert.Empty(t, tc.auth.UpdateProfileCalls())
	})

	t.Run("update zip only", func(t *testing.T) {
		tc := newTestCli(t)
		tc.auth.UpdateProfileFunc = func(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.UserResponse, error) {
			updated := *user
			updated.ZipCode = *req.ZipCode
			return &updated, nil
		}

		require.NoError(t, tc.cli.runProfile(context.Background(), ProfileFlags{ZipCode: strPtr("94103")}))

		require.Len(t, tc.auth.UpdateProfileCalls(), 1)
		req := tc.auth.UpdateProfileCalls()[0].Req
		assert.Nil(t, req.DisplayName)
		assert.Equal(t, "94103", *req.ZipCode)
		assert.Contains(t, tc.out.String(), "Profile updated")
		assert.Contains(t, tc.out.String(), "94103")
	})
}

type fakeZone struct {
	err error
	zip string
}

func (f *fakeZone) Zone(_ context.Context, zip string) (*pkgapi.ZoneResponse, error) {
	f.zip = zip
	if f.err != nil {
		return nil, f.err
	}
	if zip == "" {
		zip = "10001"
	}
	return &pkgapi.ZoneResponse{ZipCode: zip, Zone: 7}, nil
}

func TestCli_runZone(t *testing.T) {
	tc := newTestCli(t)
	zone := &fakeZone{}
	tc.cli.zone = zone

	require.NoError(t, tc.cli.runZone(context.Background(), ""))
	assert.Equal(t, "", zone.zip)
	assert.Contains(t, tc.out.String(), "Zip code 10001 is in USDA hardiness zone 7")

	zone.err = &api.APIError{Err: api.ErrValidation, StatusCode: 400, Message: "could not determine hardiness zone"}
	err := tc.cli.runZone(context.Background(), "00000")
	require.ErrorIs(t, err, api.ErrValidation)
}
