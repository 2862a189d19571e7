package web

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jshotsmedia/studio/internal/platform"
)

func (s *Server) handleMedia(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	rc, mimeType, err := s.media.Open(r.Context(), key)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer rc.Close()
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, rc); err != nil {
		s.logger.Error("serve media failed", "key", key, "error", err)
	}
}

// handleShareApp hands the client everything it needs for the share sheet or
// the copy-link fallback.
func (s *Server) handleShareApp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"title": "J Shots Media App",
		"text":  "Download the J Shots Media app for premium photography booking in Lagos!",
		"url":   s.siteURL,
	})
}

// handleShareReview redirects to the pre-filled compose URL for the review.
// A native share sheet, when one exists, runs on the client instead.
func (s *Server) handleShareReview(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid review id", http.StatusBadRequest)
		return
	}
	reviews, err := s.studio.Reviews(r.Context())
	if err != nil {
		http.Error(w, "failed to load review", http.StatusInternalServerError)
		s.logger.Error("list reviews failed", "error", err)
		return
	}
	for _, rv := range reviews {
		if rv.ID == id {
			composeURL := platform.ShareReview(nil, rv.Author, rv.Text, s.siteURL)
			http.Redirect(w, r, composeURL, http.StatusSeeOther)
			return
		}
	}
	http.NotFound(w, r)
}

func (s *Server) handleInstallStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"available": s.install.Available()})
}

func (s *Server) handleInstallPrompt(w http.ResponseWriter, r *http.Request) {
	choice, err := s.install.Prompt()
	if err != nil {
		http.Error(w, "install prompt failed", http.StatusInternalServerError)
		s.logger.Error("install prompt failed", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"outcome": string(choice)})
}
