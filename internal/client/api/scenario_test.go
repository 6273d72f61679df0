package api_test

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/PreciousIfeaka/fintrack-fe/internal/client/api"
	"github.com/PreciousIfeaka/fintrack-fe/internal/client/credstore"
	"github.com/PreciousIfeaka/fintrack-fe/internal/client/gateway"
	"github.com/PreciousIfeaka/fintrack-fe/internal/client/session"
	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// End-to-end flows over the real session, gateway, and credential store,
// with only the HTTP transport faked.

var testProfile = models.UserProfile{
	ID:       "u1",
	Name:     "Alice",
	Email:    "alice@example.com",
	Role:     "user",
	Verified: true,
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newStack(t *testing.T, fn roundTripperFunc) (*api.Client, *session.Manager, *credstore.Store) {
	t.Helper()
	store := credstore.New(filepath.Join(t.TempDir(), "credentials.json"))
	sess := session.New(store, zap.NewNop())
	sess.Bootstrap()
	client := &http.Client{Transport: fn, Timeout: time.Second}
	gw := gateway.New("http://example.com", client, sess, zap.NewNop())
	return api.New(gw, sess), sess, store
}

func TestLoginFlow_AuthenticatesAndPersists(t *testing.T) {
	loginBody := `{"status":"Success","message":"ok","data":{` +
		`"user":{"id":"u1","name":"Alice","email":"alice@example.com","role":"user","verified":true},` +
		`"accessToken":"abc"}}`
	client, sess, store := newStack(t, func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/v1/auth/login" {
			t.Errorf("unexpected path %s", req.URL.Path)
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(loginBody)),
		}, nil
	})

	if _, err := client.Login(context.Background(), "alice@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if !sess.IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
	token, user, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("stored credential missing: ok=%v err=%v", ok, err)
	}
	if token != "abc" || user.Email != "alice@example.com" {
		t.Errorf("persisted (%q, %q); want (abc, alice@example.com)", token, user.Email)
	}
}

func TestUnauthorizedResponse_LogsOutWhicheverCallTriggeredIt(t *testing.T) {
	body := `{"status":"Failed","message":"token expired"}`
	client, sess, store := newStack(t, func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusUnauthorized,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})

	// Pretend we were logged in from a previous run.
	sess.Login(&testProfile, "stale-token")

	navigated := false
	sess.OnLogout(func() { navigated = true })

	_, err := client.GetBudgetsByMonth(context.Background(), 1, 10, "2024-01")
	if err == nil {
		t.Fatal("expected authorization error")
	}
	if sess.IsAuthenticated() {
		t.Error("expected forced logout after 401")
	}
	if !navigated {
		t.Error("expected logout hook to signal navigation")
	}
	if _, _, ok, _ := store.Load(); ok {
		t.Error("expected stored credential to be cleared")
	}
}

func TestRestartFlow_BootstrapRestoresPreviousSession(t *testing.T) {
	dir := t.TempDir()
	store := credstore.New(filepath.Join(dir, "credentials.json"))

	first := session.New(store, zap.NewNop())
	first.Bootstrap()
	first.Login(&testProfile, "abc")

	// A new process over the same credential file.
	second := session.New(store, zap.NewNop())
	second.Bootstrap()

	if !second.IsAuthenticated() {
		t.Fatal("expected session restored across restart")
	}
	if second.Token() != "abc" {
		t.Errorf("token = %q; want abc", second.Token())
	}
}
