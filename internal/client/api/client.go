// Package api provides the typed Fintrack endpoint set. Every operation
// is a thin caller of the gateway: it names a route, hands payloads
// through opaquely, and decodes the envelope data on success.
package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PreciousIfeaka/fintrack-fe/internal/client/gateway"
	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// Doer issues one normalized API call. *gateway.Gateway satisfies it.
type Doer interface {
	Do(ctx context.Context, method, path string, body gateway.Body, requiresAuth bool) (json.RawMessage, error)
}

// Session is the mutation surface of the session manager the endpoints
// use: authentication results flow in through Login, profile updates
// through SetUser, and account deletion ends with Logout.
type Session interface {
	Login(user *models.UserProfile, token string)
	SetUser(user *models.UserProfile)
	Logout()
	IsAuthenticated() bool
}

// Client is the typed endpoint set over one gateway and session.
type Client struct {
	gw      Doer
	session Session
}

// New returns a Client issuing calls through gw and reporting auth state
// changes to session.
func New(gw Doer, session Session) *Client {
	return &Client{gw: gw, session: session}
}

// decode unmarshals the envelope data payload into T. An empty payload
// yields the zero value, which void endpoints rely on.
func decode[T any](data json.RawMessage) (T, error) {
	var v T
	if len(data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode response payload: %w", err)
	}
	return v, nil
}
