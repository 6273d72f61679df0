package devserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.store.userByID(userIDFromContext(r.Context()))
	if !ok {
		writeFailed(w, http.StatusNotFound, "account not found")
		return
	}
	writeSuccess(w, http.StatusOK, "Profile retrieved", profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}
	profile, ok := s.store.updateProfile(userIDFromContext(r.Context()), req)
	if !ok {
		writeFailed(w, http.StatusNotFound, "account not found")
		return
	}
	writeSuccess(w, http.StatusOK, "Profile updated", profile)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Password) < 8 || req.Password != req.ConfirmPassword {
		writeValidation(w, []fieldError{{Field: "password", Message: "passwords must match and be at least 8 characters"}})
		return
	}
	if !s.store.setPassword(userIDFromContext(r.Context()), req.Password) {
		writeFailed(w, http.StatusNotFound, "account not found")
		return
	}
	writeSuccess(w, http.StatusOK, "Password changed", nil)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// Accounts may only delete themselves.
	if id != userIDFromContext(r.Context()) {
		writeFailed(w, http.StatusForbidden, "cannot delete another account")
		return
	}
	if !s.store.deleteUser(id) {
		writeFailed(w, http.StatusNotFound, "account not found")
		return
	}
	writeSuccess(w, http.StatusOK, "Account deleted", nil)
}

// maxUploadBytes bounds avatar uploads.
const maxUploadBytes = 5 << 20

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	f, header, err := r.FormFile("file")
	if err != nil {
		writeValidation(w, []fieldError{{Field: "file", Message: "file is required"}})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		writeFailed(w, http.StatusInternalServerError, "could not read upload")
		return
	}
	id := s.store.saveUpload(header.Filename, content)
	writeSuccess(w, http.StatusCreated, "File uploaded", models.UploadResult{FileURL: "/uploads/" + id})
}

func (s *Server) handleServeUpload(w http.ResponseWriter, r *http.Request) {
	u, ok := s.store.upload(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Disposition", `inline; filename="`+u.name+`"`)
	_, _ = w.Write(u.content)
}
