package devserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// devOTP is the fixed one-time password the dev server accepts for every
// verification and reset flow.
const devOTP = "123456"

type registerRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var errs []fieldError
	if req.Email == "" {
		errs = append(errs, fieldError{Field: "email", Message: "email is required"})
	}
	if len(req.Password) < 8 {
		errs = append(errs, fieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if req.Password != req.ConfirmPassword {
		errs = append(errs, fieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}

	name := strings.TrimSpace(req.FirstName + " " + req.LastName)
	profile, ok := s.store.createUser(name, req.Email, req.Password)
	if !ok {
		writeFailed(w, http.StatusConflict, "email already registered")
		return
	}

	s.logger.Info("registered user", zap.String("email", req.Email))
	writeSuccess(w, http.StatusCreated, "Registration successful, verify the OTP sent to your email", profile)
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, ok := s.store.findByEmail(req.Email)
	if !ok {
		writeFailed(w, http.StatusNotFound, "account not found")
		return
	}
	if req.OTP != devOTP {
		writeValidation(w, []fieldError{{Field: "otp", Message: "incorrect OTP"}})
		return
	}

	profile := s.store.markVerified(existing.ID)

	token, err := generateToken(profile.ID, s.secret, s.expiry)
	if err != nil {
		writeFailed(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeSuccess(w, http.StatusOK, "Account verified", models.AuthResult{User: profile, AccessToken: token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, ok := s.store.authenticate(req.Email, req.Password)
	if !ok {
		writeFailed(w, http.StatusBadRequest, "invalid email or password")
		return
	}

	if !profile.Verified {
		writeFailed(w, http.StatusForbidden, "account not verified")
		return
	}

	token, err := generateToken(profile.ID, s.secret, s.expiry)
	if err != nil {
		writeFailed(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	writeSuccess(w, http.StatusOK, "Login successful", models.AuthResult{User: *profile, AccessToken: token})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeValidation(w, []fieldError{{Field: "email", Message: "email is required"}})
		return
	}
	s.store.beginReset(email)
	// Claim success either way so the endpoint does not leak which
	// emails have accounts.
	writeSuccess(w, http.StatusOK, "OTP sent if the account exists", nil)
}

type resetPasswordRequest struct {
	OTP             string `json:"otp"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OTP != devOTP {
		writeValidation(w, []fieldError{{Field: "otp", Message: "incorrect OTP"}})
		return
	}
	if len(req.Password) < 8 || req.Password != req.ConfirmPassword {
		writeValidation(w, []fieldError{{Field: "password", Message: "passwords must match and be at least 8 characters"}})
		return
	}
	if !s.store.completeReset(req.Password) {
		writeFailed(w, http.StatusBadRequest, "no pending password reset")
		return
	}
	writeSuccess(w, http.StatusOK, "Password reset", nil)
}
