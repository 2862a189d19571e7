package web

import (
	"net/http"
	"net/url"
	"strings"
)

func (s *Server) handleAdminUnlock(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	if !s.adminGate.Unlock(r.FormValue("pin")) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		s.renderAdmin(w, r, "Incorrect PIN")
		return
	}
	token, err := newSessionToken()
	if err != nil {
		http.Error(w, "failed to open session", http.StatusInternalServerError)
		s.logger.Error("mint session token failed", "error", err)
		return
	}
	s.sessionMu.Lock()
	s.adminSessions[token] = true
	s.sessionMu.Unlock()
	http.SetCookie(w, &http.Cookie{
		Name:     "studio_admin",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/views/admin", http.StatusSeeOther)
}

// requireAdmin guards the mutating dashboard endpoints.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if s.adminUnlocked(r) {
		return true
	}
	http.Error(w, "admin access locked", http.StatusForbidden)
	return false
}

func (s *Server) handleAdminUpdateMember(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid member id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	role := strings.TrimSpace(r.FormValue("role"))
	if _, err := s.studio.UpdateMember(r.Context(), id, name, phone, role); err != nil {
		http.Error(w, "failed to update member", http.StatusUnprocessableEntity)
		s.logger.Error("update member failed", "member_id", id, "error", err)
		return
	}
	http.Redirect(w, r, "/views/admin?tab=team", http.StatusSeeOther)
}

func (s *Server) handleAdminMemberPhoto(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid member id", http.StatusBadRequest)
		return
	}
	stageKey, err := s.stageUpload(r, "photo", "team")
	if err != nil {
		http.Error(w, "a valid image file is required", http.StatusBadRequest)
		return
	}
	if _, err := s.studio.SetMemberImage(r.Context(), id, stageKey); err != nil {
		if derr := s.media.Discard(r.Context(), stageKey); derr != nil {
			s.logger.Error("discard staged upload failed", "stage_key", stageKey, "error", derr)
		}
		http.Error(w, "failed to update photo", http.StatusInternalServerError)
		s.logger.Error("set member image failed", "member_id", id, "error", err)
		return
	}
	http.Redirect(w, r, "/views/admin?tab=team", http.StatusSeeOther)
}

func (s *Server) handleAdminBoardPost(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	identity := r.FormValue("identity")
	text := strings.TrimSpace(r.FormValue("text"))
	if _, err := s.studio.PostBoard(r.Context(), identity, text); err != nil {
		http.Error(w, "failed to post message", http.StatusUnprocessableEntity)
		return
	}
	http.Redirect(w, r, "/views/admin?tab=board&identity="+url.QueryEscape(identity), http.StatusSeeOther)
}

func (s *Server) handleAdminSettings(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	phone := strings.TrimSpace(r.FormValue("phone"))
	email := strings.TrimSpace(r.FormValue("email"))
	if _, err := s.studio.UpdateCompany(r.Context(), phone, email); err != nil {
		http.Error(w, "failed to update settings", http.StatusUnprocessableEntity)
		s.logger.Error("update company failed", "error", err)
		return
	}
	http.Redirect(w, r, "/views/admin?tab=settings", http.StatusSeeOther)
}

func (s *Server) handleAdminLogo(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	stageKey, err := s.stageUpload(r, "logo", "logo")
	if err != nil {
		http.Error(w, "a valid image file is required", http.StatusBadRequest)
		return
	}
	if _, err := s.studio.SetLogo(r.Context(), stageKey); err != nil {
		if derr := s.media.Discard(r.Context(), stageKey); derr != nil {
			s.logger.Error("discard staged upload failed", "stage_key", stageKey, "error", derr)
		}
		http.Error(w, "failed to update logo", http.StatusInternalServerError)
		s.logger.Error("set logo failed", "error", err)
		return
	}
	http.Redirect(w, r, "/views/admin?tab=settings", http.StatusSeeOther)
}
