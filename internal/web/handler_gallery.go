package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jshotsmedia/studio/internal/service"
)

func (s *Server) handleGalleryUnlock(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	if !s.gallery.Unlock(r.FormValue("pin")) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		s.renderGallery(w, r, "Incorrect Access PIN")
		return
	}
	token, err := newSessionToken()
	if err != nil {
		http.Error(w, "failed to open session", http.StatusInternalServerError)
		s.logger.Error("mint session token failed", "error", err)
		return
	}
	s.sessionMu.Lock()
	s.teamSessions[token] = true
	s.sessionMu.Unlock()
	http.SetCookie(w, &http.Cookie{
		Name:     "studio_team",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/views/gallery", http.StatusSeeOther)
}

func (s *Server) handleGalleryUpload(w http.ResponseWriter, r *http.Request) {
	if !s.teamUnlocked(r) {
		http.Error(w, "gallery access locked", http.StatusForbidden)
		return
	}
	stageKey, err := s.stageUpload(r, "photo", "gallery")
	if err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		s.renderGallery(w, r, "Please attach a photo (JPEG, PNG, GIF, or WebP).")
		return
	}
	category := r.FormValue("category")
	caption := strings.TrimSpace(r.FormValue("caption"))
	if _, err := s.gallery.Upload(r.Context(), stageKey, category, caption); err != nil {
		if derr := s.media.Discard(r.Context(), stageKey); derr != nil {
			s.logger.Error("discard staged upload failed", "stage_key", stageKey, "error", derr)
		}
		if errors.Is(err, service.ErrUploadIncomplete) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusUnprocessableEntity)
			s.renderGallery(w, r, "Please select a photo and write a caption before uploading.")
			return
		}
		http.Error(w, "failed to publish photo", http.StatusInternalServerError)
		s.logger.Error("gallery upload failed", "error", err)
		return
	}
	http.Redirect(w, r, "/views/gallery", http.StatusSeeOther)
}
