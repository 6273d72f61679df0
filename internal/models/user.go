package models

// UpdateProfileRequest is the partial-update payload for the signed-in
// user's profile. Nil fields are left unchanged by the server.
type UpdateProfileRequest struct {
	Name      *string   `json:"name,omitempty"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	Currency  *Currency `json:"currency,omitempty"`
}

// ChangePasswordRequest carries the new password and its confirmation.
type ChangePasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UploadResult is returned by the file upload endpoint.
type UploadResult struct {
	// FileURL is where the uploaded file can be fetched from.
	FileURL string `json:"fileUrl"`
}
