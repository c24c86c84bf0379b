package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/raith/agroconnect/internal/api"
	"github.com/raith/agroconnect/internal/config"
	"github.com/raith/agroconnect/internal/nav"
	"github.com/raith/agroconnect/internal/session"
	"github.com/raith/agroconnect/internal/shipments"
)

func testConfig() config.Config {
	return config.Config{
		API: config.APIConfig{BaseURL: "http://127.0.0.1:0", TimeoutSeconds: 1},
		UI:  config.UIConfig{CurrencySymbol: "₹", DateFormat: "02/01/2006"},
	}
}

func newTestApp(t *testing.T, baseURL string) (*App, *session.Store, *nav.Register) {
	t.Helper()
	cfg := testConfig()
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	client := api.New(cfg.API.BaseURL, time.Second)
	sess := session.NewStore(client, filepath.Join(t.TempDir(), "session.json"))
	register := nav.NewRegister(func() nav.Session {
		snap := sess.Snapshot()
		return nav.Session{Authenticated: snap.User != nil, Loading: snap.Loading}
	})
	app := New(context.Background(), cfg, client, sess, register, shipments.NewBook())
	return app, sess, register
}

func TestViewShowsSpinnerWhileSessionLoading(t *testing.T) {
	app, _, _ := newTestApp(t, "")

	out := app.View()
	require.Contains(t, out, "loading session")
	require.NotContains(t, out, "Sign in")
}

func TestViewShowsLoginForSignedOutSession(t *testing.T) {
	app, sess, register := newTestApp(t, "")
	sess.Restore()

	// Even a forced transition to a protected page must not render it for a
	// signed-out session.
	register.RequestTransition(nav.PageCart, "", true)
	require.Equal(t, nav.PageCart, register.Current().Page)
	require.Contains(t, app.View(), "Sign in")
}

func TestViewShowsAuthPagesWhenSignedOut(t *testing.T) {
	app, sess, register := newTestApp(t, "")
	sess.Restore()

	register.RequestTransition(nav.PageRegister, "", false)
	require.Contains(t, app.View(), "Create account")

	register.RequestTransition(nav.PageForgotPassword, "", false)
	require.Contains(t, app.View(), "Reset password")
}

func TestViewDispatchesForSignedInSession(t *testing.T) {
	srv := loginServer(t)
	defer srv.Close()

	app, sess, register := newTestApp(t, srv.URL)
	sess.Restore()
	require.NoError(t, sess.SignIn(context.Background(), "asha@example.com", "pw"))

	register.RequestTransition(nav.PageSupplyChain, "", false)
	require.Contains(t, app.View(), "Supply chain")

	register.RequestTransition(nav.PageCart, "", false)
	require.Contains(t, app.View(), "Cart")
}

func TestViewDefaultsUnlistedPagesToDashboard(t *testing.T) {
	srv := loginServer(t)
	defer srv.Close()

	app, sess, register := newTestApp(t, srv.URL)
	sess.Restore()
	require.NoError(t, sess.SignIn(context.Background(), "asha@example.com", "pw"))

	// product-detail has no dedicated screen; it falls through to the
	// dashboard rather than erroring.
	register.RequestTransition(nav.PageProductDetail, "42", false)
	require.Contains(t, app.View(), "Dashboard")
}

func TestViewShipmentDetailsReadsNavPayload(t *testing.T) {
	srv := loginServer(t)
	defer srv.Close()

	app, sess, register := newTestApp(t, srv.URL)
	sess.Restore()
	require.NoError(t, sess.SignIn(context.Background(), "asha@example.com", "pw"))

	register.RequestTransition(nav.PageShipmentDetails, "1", false)
	out := app.View()
	require.Contains(t, out, "SCM2024001")
	require.Contains(t, out, "Rice - 500kg")

	register.RequestTransition(nav.PageShipmentDetails, "no-such-id", false)
	require.Contains(t, app.View(), "shipment not found")
}

func TestNavigationResetClearsStatusAndForms(t *testing.T) {
	srv := loginServer(t)
	defer srv.Close()

	app, sess, register := newTestApp(t, srv.URL)
	sess.Restore()
	require.NoError(t, sess.SignIn(context.Background(), "asha@example.com", "pw"))

	app.setStatus("stale message")
	app.track.input.SetValue("SCM2024001")
	register.RequestTransition(nav.PageTrackShipment, "", false)

	require.Empty(t, app.status)
	require.Empty(t, app.track.input.Value())
}

func loginServer(t *testing.T) *httptest.Server {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/login/") {
			json.NewEncoder(w).Encode(api.LoginResult{
				Access:  token,
				Refresh: token,
				User:    api.User{ID: 7, Email: "asha@example.com", FullName: "Asha Patel", Role: "farmer"},
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
}
