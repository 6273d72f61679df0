package api

import (
	"context"
	"io"
	"net/http"

	"github.com/PreciousIfeaka/fintrack-fe/internal/client/gateway"
	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// UpdateProfile applies a partial update to the signed-in user's profile.
// On success the session profile is replaced wholesale with the server's
// copy; a response arriving after a logout is discarded by the session.
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	data, err := c.gw.Do(ctx, http.MethodPatch, "/api/v1/users/me", gateway.JSON(req), true)
	if err != nil {
		return nil, err
	}
	user, err := decode[models.UserProfile](data)
	if err != nil {
		return nil, err
	}
	c.session.SetUser(&user)
	return &user, nil
}

// ChangePassword sets a new password for the signed-in user.
func (c *Client) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	_, err := c.gw.Do(ctx, http.MethodPut, "/api/v1/users/me/password", gateway.JSON(req), true)
	return err
}

// DeleteAccount deletes the account with the given id and ends the
// session.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	if _, err := c.gw.Do(ctx, http.MethodDelete, "/api/v1/users/"+id, nil, true); err != nil {
		return err
	}
	c.session.Logout()
	return nil
}

// UploadAvatar uploads a profile picture and returns where the server
// stored it. The caller follows up with UpdateProfile to point the
// profile at the new URL.
func (c *Client) UploadAvatar(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	body := gateway.Multipart(nil, gateway.FilePart{Field: "file", Name: filename, Reader: r})
	data, err := c.gw.Do(ctx, http.MethodPost, "/api/v1/uploads", body, true)
	if err != nil {
		return nil, err
	}
	return decode[*models.UploadResult](data)
}
