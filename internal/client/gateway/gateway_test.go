package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

// roundTripperFunc adapts a function into an http.RoundTripper so the
// transport can be faked per test.
type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(fn roundTripperFunc) *http.Client {
	return &http.Client{Transport: fn, Timeout: time.Second}
}

type fakeSession struct {
	token     string
	loggedOut bool
}

func (f *fakeSession) Token() string { return f.token }
func (f *fakeSession) Logout()       { f.loggedOut = true; f.token = "" }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDo_AttachesBearerHeader(t *testing.T) {
	sess := &fakeSession{token: "abc"}
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if got := req.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("Authorization = %q; want %q", got, "Bearer abc")
		}
		return jsonResponse(200, `{"status":"Success","data":{}}`), nil
	})
	g := New("http://example.com", client, sess, zap.NewNop())

	if _, err := g.Do(context.Background(), http.MethodGet, "/api/v1/budgets", nil, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_NoTokenStillSendsWithoutHeader(t *testing.T) {
	sess := &fakeSession{}
	sent := false
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		sent = true
		if got := req.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		return jsonResponse(200, `{"status":"Success","data":{}}`), nil
	})
	g := New("http://example.com", client, sess, zap.NewNop())

	if _, err := g.Do(context.Background(), http.MethodGet, "/api/v1/budgets", nil, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sent {
		t.Error("request was not sent; the server decides about missing auth, not the gateway")
	}
}

func TestDo_JSONBodyContentType(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if ct := req.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q; want application/json", ct)
		}
		var payload map[string]string
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if payload["email"] != "alice@example.com" {
			t.Errorf("body = %v", payload)
		}
		return jsonResponse(200, `{"status":"Success"}`), nil
	})
	g := New("http://example.com", client, &fakeSession{}, zap.NewNop())

	_, err := g.Do(context.Background(), http.MethodPost, "/api/v1/auth/login",
		JSON(map[string]string{"email": "alice@example.com"}), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_MultipartBodyContentType(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		ct := req.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "multipart/form-data; boundary=") {
			t.Errorf("Content-Type = %q; want multipart/form-data", ct)
		}
		if err := req.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		f, header, err := req.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if header.Filename != "avatar.png" {
			t.Errorf("filename = %q", header.Filename)
		}
		return jsonResponse(200, `{"status":"Success","data":{"fileUrl":"/uploads/1"}}`), nil
	})
	g := New("http://example.com", client, &fakeSession{token: "abc"}, zap.NewNop())

	body := Multipart(nil, FilePart{Field: "file", Name: "avatar.png", Reader: strings.NewReader("png-bytes")})
	if _, err := g.Do(context.Background(), http.MethodPost, "/api/v1/uploads", body, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_NetworkErrorIsGeneric(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	})
	g := New("http://example.com", client, &fakeSession{}, zap.NewNop())

	_, err := g.Do(context.Background(), http.MethodGet, "/api/v1/budgets", nil, false)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != KindGeneric {
		t.Fatalf("expected generic APIError, got %v", err)
	}
}

func TestNormalize_MalformedBody(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(500, "<html>bad gateway</html>"), nil
	})
	g := New("http://example.com", client, &fakeSession{}, zap.NewNop())

	_, err := g.Do(context.Background(), http.MethodGet, "/api/v1/budgets", nil, false)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Kind != KindGeneric || apiErr.Message != "malformed response" {
		t.Errorf("got kind=%v message=%q", apiErr.Kind, apiErr.Message)
	}
}

func TestNormalize_UnauthorizedForcesLogout(t *testing.T) {
	sess := &fakeSession{token: "stale"}
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(401, `{"status":"Failed","message":"token expired"}`), nil
	})
	g := New("http://example.com", client, sess, zap.NewNop())

	_, err := g.Do(context.Background(), http.MethodGet, "/api/v1/budgets", nil, true)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != KindAuthorization {
		t.Fatalf("expected authorization APIError, got %v", err)
	}
	if !sess.loggedOut {
		t.Error("401 must force the session to log out")
	}
}

func TestNormalize_UnauthorizedBeatsValidation(t *testing.T) {
	// A 401 whose body also carries field errors is still an
	// authorization failure, never a validation one.
	sess := &fakeSession{token: "stale"}
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		body := `{"status":"Failed","message":"expired","errors":[{"field":"amount","message":"required"}]}`
		return jsonResponse(401, body), nil
	})
	g := New("http://example.com", client, sess, zap.NewNop())

	_, err := g.Do(context.Background(), http.MethodPost, "/api/v1/budgets", nil, true)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Kind != KindAuthorization {
		t.Errorf("kind = %v; want authorization", apiErr.Kind)
	}
	if !sess.loggedOut {
		t.Error("expected forced logout")
	}
}

func TestNormalize_ValidationCarriesFieldErrors(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		body := `{"status":"Failed","message":"bad input","errors":[` +
			`{"field":"email","message":"invalid email"},` +
			`{"field":"password","message":"too short"}]}`
		return jsonResponse(400, body), nil
	})
	g := New("http://example.com", client, &fakeSession{}, zap.NewNop())

	_, err := g.Do(context.Background(), http.MethodPost, "/api/v1/auth/register", nil, false)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != KindValidation {
		t.Fatalf("expected validation APIError, got %v", err)
	}
	if len(apiErr.FieldErrors) != 2 || apiErr.FieldErrors[0].Field != "email" {
		t.Errorf("field errors = %+v", apiErr.FieldErrors)
	}
}

func TestNormalize_GenericMessageAndCodeFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode int
	}{
		{
			name:     "message and code from body",
			status:   500,
			body:     `{"status":"Failed","message":"budget not found","statusCode":404}`,
			wantMsg:  "budget not found",
			wantCode: 404,
		},
		{
			name:     "fallbacks from transport",
			status:   502,
			body:     `{"status":"Failed"}`,
			wantMsg:  "An error occurred",
			wantCode: 502,
		},
		{
			name:     "failed status on HTTP 200",
			status:   200,
			body:     `{"status":"Failed","message":"insufficient funds"}`,
			wantMsg:  "insufficient funds",
			wantCode: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(func(req *http.Request) (*http.Response, error) {
				return jsonResponse(tt.status, tt.body), nil
			})
			g := New("http://example.com", client, &fakeSession{}, zap.NewNop())

			_, err := g.Do(context.Background(), http.MethodGet, "/api/v1/budgets", nil, false)
			var apiErr *APIError
			if !errors.As(err, &apiErr) || apiErr.Kind != KindGeneric {
				t.Fatalf("expected generic APIError, got %v", err)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("message = %q; want %q", apiErr.Message, tt.wantMsg)
			}
			if apiErr.StatusCode != tt.wantCode {
				t.Errorf("statusCode = %d; want %d", apiErr.StatusCode, tt.wantCode)
			}
		})
	}
}

func TestNormalize_SuccessReturnsDataUnwrapped(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"status":"Success","message":"ok","data":{"id":"b1","amount":250}}`), nil
	})
	g := New("http://example.com", client, &fakeSession{}, zap.NewNop())

	data, err := g.Do(context.Background(), http.MethodGet, "/api/v1/budgets/b1", nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload struct {
		ID     string  `json:"id"`
		Amount float64 `json:"amount"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if payload.ID != "b1" || payload.Amount != 250 {
		t.Errorf("payload = %+v", payload)
	}
}
