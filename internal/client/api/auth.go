package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PreciousIfeaka/fintrack-fe/internal/client/gateway"
	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

type registerRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register creates a new account. The full name is split into first and
// last name the way the server expects: first word, then the rest.
func (c *Client) Register(ctx context.Context, fullName, email, password, confirmPassword string) (*models.UserProfile, error) {
	first, last := splitName(fullName)
	data, err := c.gw.Do(ctx, http.MethodPost, "/api/v1/auth/register", gateway.JSON(registerRequest{
		FirstName:       first,
		LastName:        last,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}), false)
	if err != nil {
		return nil, err
	}
	user, err := decode[models.UserProfile](data)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyOTP confirms a registration or sign-in challenge. On success the
// session is logged in with the returned profile and token.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*models.AuthResult, error) {
	data, err := c.gw.Do(ctx, http.MethodPost, "/api/v1/auth/verify-otp", gateway.JSON(map[string]string{
		"email": email,
		"otp":   otp,
	}), false)
	if err != nil {
		return nil, err
	}
	res, err := decode[models.AuthResult](data)
	if err != nil {
		return nil, err
	}
	c.session.Login(&res.User, res.AccessToken)
	return &res, nil
}

// Login authenticates with email and password. On success the session is
// logged in with the returned profile and token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	data, err := c.gw.Do(ctx, http.MethodPost, "/api/v1/auth/login", gateway.JSON(map[string]string{
		"email":    email,
		"password": password,
	}), false)
	if err != nil {
		return nil, err
	}
	res, err := decode[models.AuthResult](data)
	if err != nil {
		return nil, err
	}
	c.session.Login(&res.User, res.AccessToken)
	return &res, nil
}

// ForgotPassword asks the server to mail a reset OTP to email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	path := "/api/v1/auth/forgot-password?email=" + url.QueryEscape(email)
	_, err := c.gw.Do(ctx, http.MethodGet, path, nil, false)
	return err
}

// ResendOTP re-issues the pending OTP for email. The server treats it as
// another forgot-password request.
func (c *Client) ResendOTP(ctx context.Context, email string) error {
	return c.ForgotPassword(ctx, email)
}

// ResetPassword sets a new password using the OTP from ForgotPassword.
func (c *Client) ResetPassword(ctx context.Context, otp, password, confirmPassword string) error {
	_, err := c.gw.Do(ctx, http.MethodPut, "/api/v1/auth/reset-password", gateway.JSON(map[string]string{
		"otp":             otp,
		"password":        password,
		"confirmPassword": confirmPassword,
	}), false)
	return err
}

// splitName separates a display name into the first word and the rest.
func splitName(fullName string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(fullName))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
