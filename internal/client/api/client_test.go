package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/PreciousIfeaka/fintrack-fe/internal/client/gateway"
	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// mockDoer records the last call and returns a canned payload.
type mockDoer struct {
	DoFunc func(ctx context.Context, method, path string, body gateway.Body, requiresAuth bool) (json.RawMessage, error)

	method       string
	path         string
	body         gateway.Body
	requiresAuth bool
}

func (m *mockDoer) Do(ctx context.Context, method, path string, body gateway.Body, requiresAuth bool) (json.RawMessage, error) {
	m.method, m.path, m.body, m.requiresAuth = method, path, body, requiresAuth
	if m.DoFunc != nil {
		return m.DoFunc(ctx, method, path, body, requiresAuth)
	}
	return nil, nil
}

type mockSession struct {
	user      *models.UserProfile
	token     string
	loggedOut bool
	setUser   *models.UserProfile
}

func (m *mockSession) Login(user *models.UserProfile, token string) { m.user, m.token = user, token }
func (m *mockSession) SetUser(user *models.UserProfile)             { m.setUser = user }
func (m *mockSession) Logout()                                      { m.loggedOut = true }
func (m *mockSession) IsAuthenticated() bool                        { return m.user != nil && m.token != "" }

func payload(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func TestRegister_SplitsFullName(t *testing.T) {
	gw := &mockDoer{
		DoFunc: func(_ context.Context, _, _ string, body gateway.Body, _ bool) (json.RawMessage, error) {
			return payload(models.UserProfile{ID: "u1", Email: "alice@example.com"}), nil
		},
	}
	c := New(gw, &mockSession{})

	if _, err := c.Register(context.Background(), "Alice van Doe", "alice@example.com", "secret", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if gw.method != http.MethodPost || gw.path != "/api/v1/auth/register" {
		t.Errorf("call = %s %s", gw.method, gw.path)
	}
	if gw.requiresAuth {
		t.Error("register must not require auth")
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in, first, last string
	}{
		{"Alice Doe", "Alice", "Doe"},
		{"Alice van Doe", "Alice", "van Doe"},
		{"Alice", "Alice", ""},
		{"  Alice   Doe  ", "Alice", "Doe"},
		{"", "", ""},
	}
	for _, tt := range tests {
		first, last := splitName(tt.in)
		if first != tt.first || last != tt.last {
			t.Errorf("splitName(%q) = %q, %q; want %q, %q", tt.in, first, last, tt.first, tt.last)
		}
	}
}

func TestLogin_PushesResultIntoSession(t *testing.T) {
	gw := &mockDoer{
		DoFunc: func(_ context.Context, _, _ string, _ gateway.Body, _ bool) (json.RawMessage, error) {
			return payload(models.AuthResult{
				User:        models.UserProfile{ID: "u1", Email: "alice@example.com"},
				AccessToken: "abc",
			}), nil
		},
	}
	sess := &mockSession{}
	c := New(gw, sess)

	res, err := c.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken != "abc" {
		t.Errorf("token = %q", res.AccessToken)
	}
	if sess.token != "abc" || sess.user == nil || sess.user.Email != "alice@example.com" {
		t.Errorf("session not logged in: %+v", sess)
	}
}

func TestForgotPassword_QueryEscapesEmail(t *testing.T) {
	gw := &mockDoer{}
	c := New(gw, &mockSession{})

	if err := c.ForgotPassword(context.Background(), "a+b@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if gw.method != http.MethodGet {
		t.Errorf("method = %s", gw.method)
	}
	if !strings.Contains(gw.path, "email=a%2Bb%40example.com") {
		t.Errorf("path = %q; email not escaped", gw.path)
	}
}

func TestGetBudgetsByMonth_PathAndPageCount(t *testing.T) {
	gw := &mockDoer{
		DoFunc: func(_ context.Context, _, _ string, _ gateway.Body, _ bool) (json.RawMessage, error) {
			return payload(models.PagedBudgets{Page: 1, Limit: 10, Total: 25, TotalBudget: 1500}), nil
		},
	}
	c := New(gw, &mockSession{})

	page, err := c.GetBudgetsByMonth(context.Background(), 1, 10, "2024-01")
	if err != nil {
		t.Fatalf("GetBudgetsByMonth: %v", err)
	}
	if gw.path != "/api/v1/budgets?page=1&limit=10&month=2024-01" {
		t.Errorf("path = %q", gw.path)
	}
	if !gw.requiresAuth {
		t.Error("budget listing must require auth")
	}
	if got := page.Pages(); got != 3 {
		t.Errorf("Pages() = %d; want 3", got)
	}
}

func TestGetExpensesByMonth_CategoryFilter(t *testing.T) {
	tests := []struct {
		name     string
		category models.ExpenseCategory
		wantPath string
	}{
		{"specific category", models.CategoryFood, "/api/v1/expenses?page=2&limit=10&month=2024-03&category=food"},
		{"all categories", models.CategoryAll, "/api/v1/expenses?page=2&limit=10&month=2024-03"},
		{"empty category", "", "/api/v1/expenses?page=2&limit=10&month=2024-03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &mockDoer{
				DoFunc: func(_ context.Context, _, _ string, _ gateway.Body, _ bool) (json.RawMessage, error) {
					return payload(models.PagedExpenses{}), nil
				},
			}
			c := New(gw, &mockSession{})
			if _, err := c.GetExpensesByMonth(context.Background(), 2, 10, "2024-03", tt.category); err != nil {
				t.Fatalf("GetExpensesByMonth: %v", err)
			}
			if gw.path != tt.wantPath {
				t.Errorf("path = %q; want %q", gw.path, tt.wantPath)
			}
		})
	}
}

func TestUpdateProfile_ReplacesSessionUser(t *testing.T) {
	gw := &mockDoer{
		DoFunc: func(_ context.Context, _, _ string, _ gateway.Body, _ bool) (json.RawMessage, error) {
			return payload(models.UserProfile{ID: "u1", Name: "Alice Updated"}), nil
		},
	}
	sess := &mockSession{}
	c := New(gw, sess)

	name := "Alice Updated"
	if _, err := c.UpdateProfile(context.Background(), models.UpdateProfileRequest{Name: &name}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if sess.setUser == nil || sess.setUser.Name != "Alice Updated" {
		t.Errorf("session profile not replaced: %+v", sess.setUser)
	}
}

func TestDeleteAccount_EndsSession(t *testing.T) {
	gw := &mockDoer{}
	sess := &mockSession{}
	c := New(gw, sess)

	if err := c.DeleteAccount(context.Background(), "u1"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if gw.method != http.MethodDelete || gw.path != "/api/v1/users/u1" {
		t.Errorf("call = %s %s", gw.method, gw.path)
	}
	if !sess.loggedOut {
		t.Error("expected logout after account deletion")
	}
}

func TestUploadAvatar_MultipartBody(t *testing.T) {
	gw := &mockDoer{
		DoFunc: func(_ context.Context, _, _ string, _ gateway.Body, _ bool) (json.RawMessage, error) {
			return payload(models.UploadResult{FileURL: "/uploads/abc"}), nil
		},
	}
	c := New(gw, &mockSession{})

	res, err := c.UploadAvatar(context.Background(), "avatar.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("UploadAvatar: %v", err)
	}
	if res.FileURL != "/uploads/abc" {
		t.Errorf("fileUrl = %q", res.FileURL)
	}
	if gw.body == nil {
		t.Fatal("expected a multipart request body")
	}
}
