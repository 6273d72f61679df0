package gateway

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// envelope is the fixed wrapper every server response uses.
type envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     []FieldError    `json:"errors"`
	StatusCode int             `json:"statusCode"`
}

const (
	statusSuccess = "Success"

	genericMessage   = "An error occurred"
	malformedMessage = "malformed response"
	expiredMessage   = "session expired"
)

// normalize classifies a raw server reply. The order of checks is load
// bearing: an expired token during a form submission must come back as an
// authorization failure, never as a validation one, so the 401 check runs
// before anything that looks at the body's field errors.
func (g *Gateway) normalize(resp *http.Response) (json.RawMessage, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindGeneric, Message: malformedMessage, StatusCode: resp.StatusCode}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		g.logger.Warn("non-JSON response body",
			zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &APIError{Kind: KindGeneric, Message: malformedMessage, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The one place a response may force a logout: a rejected
		// credential invalidates every open view, not just this call.
		g.logger.Warn("authorization failure, clearing session")
		g.session.Logout()
		msg := env.Message
		if msg == "" {
			msg = expiredMessage
		}
		return nil, &APIError{Kind: KindAuthorization, Message: msg, StatusCode: resp.StatusCode}
	}

	failed := env.Status != statusSuccess || resp.StatusCode >= http.StatusBadRequest
	if !failed {
		return env.Data, nil
	}

	if len(env.Errors) > 0 {
		return nil, &APIError{
			Kind:        KindValidation,
			Message:     "Validation failed",
			StatusCode:  resp.StatusCode,
			FieldErrors: env.Errors,
		}
	}

	msg := env.Message
	if msg == "" {
		msg = genericMessage
	}
	code := env.StatusCode
	if code == 0 {
		code = resp.StatusCode
	}
	return nil, &APIError{Kind: KindGeneric, Message: msg, StatusCode: code}
}
