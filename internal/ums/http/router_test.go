package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/ums/internal/ums/store"
	"github.com/aussiebroadwan/ums/internal/ums/store/drivers/sqlite"
	"github.com/aussiebroadwan/ums/pkg/cryptox"
	"github.com/aussiebroadwan/ums/pkg/jwtx"
	"github.com/aussiebroadwan/ums/pkg/slogx"
	"github.com/aussiebroadwan/ums/pkg/umssdk"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	server *httptest.Server
	router *Router
	store  *sqlite.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "ums.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSessionSigner("test-secret", "ums-test", time.Hour)
	require.NoError(t, err)

	router := NewRouter(signer, cryptox.NewPasswordHasher("pepper"), false, "test", st, slogx.Discard())
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, router: router, store: st}
}

func (e *testEnv) client() *umssdk.Client { return umssdk.NewClient(e.server.URL) }

func validRegistration(email string) umssdk.RegisterRequest {
	return umssdk.RegisterRequest{
		Email:           email,
		Password:        "Abc123!@",
		ConfirmPassword: "Abc123!@",
		FirstName:       "Ada",
		LastName:        "Lovelace",
	}
}

func apiError(t *testing.T, err error) *umssdk.APIError {
	t.Helper()
	var apiErr *umssdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *umssdk.APIError, got %v", err)
	return apiErr
}

func TestRegisterLoginProfileLogout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.client()

	user, err := c.Register(ctx, validRegistration("a@b.com"))
	require.NoError(t, err)
	require.Equal(t, "a@b.com", user.Email)
	require.NotEmpty(t, user.ID)

	profile, err := c.Profile(ctx)
	require.NoError(t, err, "registration logs the client in")
	require.Equal(t, user.ID, profile.ID)

	require.NoError(t, c.Logout(ctx))
	_, err = c.Profile(ctx)
	require.ErrorIs(t, err, umssdk.ErrUnauthenticated)

	_, err = c.Login(ctx, "a@b.com", "wrong")
	require.ErrorIs(t, err, umssdk.ErrInvalidCredentials)
	require.Equal(t, "Invalid email or password", apiError(t, err).Message)

	_, err = c.Login(ctx, "a@b.com", "Abc123!@")
	require.NoError(t, err)
	profile, err = c.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, user.ID, profile.ID)
}

func TestRegisterValidationAndConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.client()

	bad := validRegistration("not-an-email")
	bad.Password = "abc12345"
	bad.ConfirmPassword = "abc12345"
	_, err := c.Register(ctx, bad)
	require.ErrorIs(t, err, umssdk.ErrValidationFailed)

	apiErr := apiError(t, err)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Please fix the errors before submitting", apiErr.Message)
	require.Equal(t, map[string]string{
		"email":    "Please enter a valid email address",
		"password": "Password must contain at least one uppercase letter",
	}, apiErr.Details)

	_, err = c.Register(ctx, validRegistration("a@b.com"))
	require.NoError(t, err)

	_, err = env.client().Register(ctx, validRegistration("a@b.com"))
	require.ErrorIs(t, err, umssdk.ErrEmailTaken)
	require.Equal(t, http.StatusConflict, apiError(t, err).StatusCode)
	require.Equal(t, "Email already exists", apiError(t, err).Message)
}

func TestLoginOnlyRequiresPasswordPresence(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.client().Login(ctx, "", "")
	require.ErrorIs(t, err, umssdk.ErrValidationFailed)
	require.Equal(t, "Please fix the errors before logging in", apiError(t, err).Message)

	// A weak password is not a validation error at login; it is just wrong.
	_, err = env.client().Login(ctx, "a@b.com", "weak")
	require.ErrorIs(t, err, umssdk.ErrInvalidCredentials)
}

func TestProfileRequiresSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.client()

	_, err := c.Profile(ctx)
	require.ErrorIs(t, err, umssdk.ErrUnauthenticated)

	name := "Augusta"
	_, err = c.UpdateProfile(ctx, umssdk.ProfileUpdateRequest{FirstName: &name})
	require.ErrorIs(t, err, umssdk.ErrUnauthenticated)

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/v1/profile", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: umssdk.SessionCookieName, Value: "forged.token.value"})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	other := env.client()
	_, err := other.Register(ctx, validRegistration("taken@b.com"))
	require.NoError(t, err)

	c := env.client()
	_, err = c.Register(ctx, validRegistration("a@b.com"))
	require.NoError(t, err)

	first, email := "  Augusta ", "ada@b.com"
	updated, err := c.UpdateProfile(ctx, umssdk.ProfileUpdateRequest{
		FirstName: &first,
		Email:     &email,
	})
	require.NoError(t, err)
	require.Equal(t, "Augusta", updated.FirstName, "saved trimmed")
	require.Equal(t, "Lovelace", updated.LastName, "omitted fields kept")
	require.Equal(t, "ada@b.com", updated.Email)

	badName := "X"
	_, err = c.UpdateProfile(ctx, umssdk.ProfileUpdateRequest{LastName: &badName})
	require.ErrorIs(t, err, umssdk.ErrValidationFailed)
	require.Equal(t, "Please fix the errors before saving", apiError(t, err).Message)
	require.Equal(t, map[string]string{"lastName": "Last name must be at least 2 characters long"}, apiError(t, err).Details)

	taken := "taken@b.com"
	_, err = c.UpdateProfile(ctx, umssdk.ProfileUpdateRequest{Email: &taken})
	require.ErrorIs(t, err, umssdk.ErrEmailTaken)

	profile, err := c.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "ada@b.com", profile.Email)
}

func TestLoginRotatesSessionSlot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.client()

	_, err := c.Register(ctx, validRegistration("a@b.com"))
	require.NoError(t, err)
	before := sessionSlot(t, env, c)

	_, err = c.Login(ctx, "a@b.com", "Abc123!@")
	require.NoError(t, err)
	after := sessionSlot(t, env, c)

	require.NotEqual(t, before, after)
	_, err = env.store.Sessions().GetSession(ctx, before)
	require.ErrorIs(t, err, store.ErrNotFound, "previous slot is dropped")
	_, err = env.store.Sessions().GetSession(ctx, after)
	require.NoError(t, err)
}

// sessionSlot reads the session slot out of the client's cookie jar.
func sessionSlot(t *testing.T, env *testEnv, c *umssdk.Client) string {
	t.Helper()

	u, err := url.Parse(env.server.URL)
	require.NoError(t, err)
	for _, cookie := range c.HTTPClient.Jar.Cookies(u) {
		if cookie.Name == umssdk.SessionCookieName {
			claims, err := env.router.signer.Verify(cookie.Value)
			require.NoError(t, err)
			return claims.SID
		}
	}
	t.Fatal("no session cookie in jar")
	return ""
}

func TestValidateEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.client()

	res, err := c.ValidateField(ctx, umssdk.ValidateFieldRequest{Mode: "register", Field: "password", Value: "abc12345"})
	require.NoError(t, err)
	require.False(t, res.Valid)
	require.Equal(t, "Password must contain at least one uppercase letter", res.Error)

	res, err = c.ValidateField(ctx, umssdk.ValidateFieldRequest{Mode: "login", Field: "password", Value: "abc12345"})
	require.NoError(t, err)
	require.True(t, res.Valid)

	res, err = c.ValidateField(ctx, umssdk.ValidateFieldRequest{
		Mode: "register", Field: "confirmPassword", Value: "Abc123!#", Password: "Abc123!@",
	})
	require.NoError(t, err)
	require.Equal(t, "Passwords do not match", res.Error)

	_, err = c.ValidateField(ctx, umssdk.ValidateFieldRequest{Mode: "admin", Field: "email"})
	require.ErrorIs(t, err, umssdk.ErrInvalidRequest)
}

func TestRejectsMalformedBodies(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{"valid", "application/json", `{"mode":"login","field":"email","value":"a@b.com"}`, http.StatusOK},
		{"unknown field", "application/json", `{"mode":"login","field":"email","extra":1}`, http.StatusBadRequest},
		{"not json", "application/json", `mode=login`, http.StatusBadRequest},
		{"two objects", "application/json", `{"mode":"login","field":"email"}{}`, http.StatusBadRequest},
		{"form content type", "application/x-www-form-urlencoded", `mode=login`, http.StatusUnsupportedMediaType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(env.server.URL+"/v1/validate", tc.contentType, strings.NewReader(tc.body))
			require.NoError(t, err)
			_ = resp.Body.Close()
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.client()

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)

	require.NoError(t, env.store.Close())
	ready, err = c.GetReadiness(ctx)
	require.Error(t, err)
	require.Equal(t, http.StatusServiceUnavailable, apiError(t, err).StatusCode)
	require.Equal(t, "degraded", ready.Status)
	require.Equal(t, "unavailable", ready.Checks.Database)
}

func TestSessionCookieAttributes(t *testing.T) {
	env := newTestEnv(t)

	body := `{"email":"a@b.com","password":"Abc123!@","confirmPassword":"Abc123!@","firstName":"Ada","lastName":"Lovelace"}`
	resp, err := http.Post(env.server.URL+"/v1/register", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == umssdk.SessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	require.Equal(t, 3600, cookie.MaxAge)

	claims, err := env.router.signer.Verify(cookie.Value)
	require.NoError(t, err)
	_, err = env.store.Sessions().GetSession(context.Background(), claims.SID)
	require.NoError(t, err, "cookie names a stored session slot")
}

func TestSwaggerDocServed(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	require.Contains(t, doc.Paths, "/v1/login")
	require.Contains(t, doc.Paths, "/v1/profile")
}
