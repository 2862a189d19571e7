package web

import (
	"net/http"
	"strconv"
	"strings"
)

func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	text := strings.TrimSpace(r.FormValue("message"))
	if text == "" {
		http.Error(w, "message required", http.StatusBadRequest)
		return
	}
	if _, err := s.chat.Send(r.Context(), text); err != nil {
		http.Error(w, "failed to send message", http.StatusInternalServerError)
		s.logger.Error("chat send failed", "error", err)
		return
	}

	// HTMX partial update: return only the refreshed transcript.
	if r.Header.Get("HX-Request") == "true" {
		messages, err := s.chat.Transcript(r.Context())
		if err != nil {
			http.Error(w, "failed to load transcript", http.StatusInternalServerError)
			s.logger.Error("load transcript failed", "error", err)
			return
		}
		if err := s.renderPartial(w, "partials/chat_messages.html", messages); err != nil {
			s.logger.Error("render partial failed", "error", err)
		}
		return
	}
	http.Redirect(w, r, "/views/workplace?tab=chat", http.StatusSeeOther)
}

func (s *Server) handleChatReset(w http.ResponseWriter, r *http.Request) {
	s.bridge.Reset()
	http.Redirect(w, r, "/views/workplace?tab=chat", http.StatusSeeOther)
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	author := strings.TrimSpace(r.FormValue("author"))
	text := strings.TrimSpace(r.FormValue("text"))
	rating, _ := strconv.Atoi(r.FormValue("rating"))
	if _, err := s.studio.AddReview(r.Context(), author, rating, text); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.renderWorkplace(w, r, err.Error())
		return
	}
	http.Redirect(w, r, "/views/workplace?tab=reviews", http.StatusSeeOther)
}

func (s *Server) handleWorkplaceAddMember(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	role := strings.TrimSpace(r.FormValue("role"))
	description := strings.TrimSpace(r.FormValue("description"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	if _, err := s.studio.AddMember(r.Context(), name, role, description, phone); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.renderWorkplace(w, r, err.Error())
		return
	}
	http.Redirect(w, r, "/views/workplace?tab=team", http.StatusSeeOther)
}
