// Package gateway issues every outbound Fintrack API call, attaching the
// session's bearer token and normalizing all server replies into a single
// success-or-typed-error contract.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Session is the slice of the session manager the gateway needs: a token
// to attach, and the forced-logout transition the normalizer triggers on
// authorization failures.
type Session interface {
	Token() string
	Logout()
}

// Gateway builds and issues API requests on behalf of the typed endpoint
// set. It never inspects response payloads itself; classification is the
// normalizer's job.
type Gateway struct {
	baseURL string
	client  *http.Client
	session Session
	logger  *zap.Logger
}

// New returns a Gateway rooted at baseURL. A nil client falls back to
// http.DefaultClient.
func New(baseURL string, client *http.Client, session Session, logger *zap.Logger) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{baseURL: baseURL, client: client, session: session, logger: logger}
}

// Do issues one API call and returns the envelope's data payload on
// success, or an *APIError on any failure. When requiresAuth is set and a
// token is present, an Authorization bearer header is attached; with no
// token the request still goes out bare, leaving the server as the single
// authority on rejecting it.
func (g *Gateway) Do(ctx context.Context, method, path string, body Body, requiresAuth bool) (json.RawMessage, error) {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		var err error
		reader, contentType, err = body.build()
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if requiresAuth {
		if token := g.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	g.logger.Debug("api request", zap.String("method", method), zap.String("path", path))

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindGeneric, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	return g.normalize(resp)
}
