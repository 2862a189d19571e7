package web

import (
	"net/http"

	"github.com/jshotsmedia/studio/internal/domain"
)

// baseData assembles the template fields every page shares. The footer shows
// on every screen except home.
func (s *Server) baseData(r *http.Request, view domain.ViewState) map[string]any {
	company, err := s.studio.Company(r.Context())
	if err != nil {
		s.logger.Error("load company info failed", "error", err)
	}
	return map[string]any{
		"View":       string(view),
		"ShowFooter": view != domain.ViewHome,
		"Company":    company,
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderView(w, r, domain.ViewHome)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.renderView(w, r, domain.ParseView(r.PathValue("view")))
}

func (s *Server) renderView(w http.ResponseWriter, r *http.Request, view domain.ViewState) {
	switch view {
	case domain.ViewBooking:
		s.renderBooking(w, r, "")
	case domain.ViewGallery:
		s.renderGallery(w, r, "")
	case domain.ViewTeam:
		s.renderTeam(w, r)
	case domain.ViewWorkplace:
		s.renderWorkplace(w, r, "")
	case domain.ViewPrivacy:
		s.renderPrivacy(w, r)
	case domain.ViewAdmin:
		s.renderAdmin(w, r, "")
	default:
		s.renderHome(w, r)
	}
}

func (s *Server) renderHome(w http.ResponseWriter, r *http.Request) {
	data := s.baseData(r, domain.ViewHome)
	data["InstallAvailable"] = s.install.Available()
	if err := s.renderPage(w, data, "pages/home.html"); err != nil {
		s.logger.Error("render home failed", "error", err)
	}
}

func (s *Server) renderBooking(w http.ResponseWriter, r *http.Request, errMsg string) {
	form, submitted := s.booking.Current()
	data := s.baseData(r, domain.ViewBooking)
	data["Form"] = form
	data["Submitted"] = submitted
	data["Error"] = errMsg
	data["Locations"] = domain.Locations()
	data["TimeSlots"] = domain.TimeSlots()
	data["ServiceTypes"] = domain.ServiceTypes()
	if err := s.renderPage(w, data, "pages/booking.html"); err != nil {
		s.logger.Error("render booking failed", "error", err)
	}
}

func (s *Server) renderGallery(w http.ResponseWriter, r *http.Request, errMsg string) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.GalleryCategoryAll
	}
	items, err := s.gallery.List(r.Context(), category)
	if err != nil {
		http.Error(w, "failed to load gallery", http.StatusInternalServerError)
		s.logger.Error("list gallery failed", "error", err)
		return
	}
	data := s.baseData(r, domain.ViewGallery)
	data["Items"] = items
	data["Categories"] = domain.GalleryCategories()
	data["Active"] = category
	data["Unlocked"] = s.teamUnlocked(r)
	data["Error"] = errMsg
	if err := s.renderPage(w, data,
		"pages/gallery.html", "partials/gallery_grid.html"); err != nil {
		s.logger.Error("render gallery failed", "error", err)
	}
}

func (s *Server) renderTeam(w http.ResponseWriter, r *http.Request) {
	members, err := s.studio.Roster(r.Context())
	if err != nil {
		http.Error(w, "failed to load team", http.StatusInternalServerError)
		s.logger.Error("list roster failed", "error", err)
		return
	}
	data := s.baseData(r, domain.ViewTeam)
	data["Members"] = members
	if err := s.renderPage(w, data, "pages/team.html"); err != nil {
		s.logger.Error("render team failed", "error", err)
	}
}

func (s *Server) renderWorkplace(w http.ResponseWriter, r *http.Request, errMsg string) {
	tab := r.URL.Query().Get("tab")
	if tab != "reviews" && tab != "team" {
		tab = "chat"
	}
	ctx := r.Context()
	messages, err := s.chat.Transcript(ctx)
	if err != nil {
		http.Error(w, "failed to load workspace", http.StatusInternalServerError)
		s.logger.Error("load transcript failed", "error", err)
		return
	}
	reviews, err := s.studio.Reviews(ctx)
	if err != nil {
		http.Error(w, "failed to load workspace", http.StatusInternalServerError)
		s.logger.Error("list reviews failed", "error", err)
		return
	}
	members, err := s.studio.Roster(ctx)
	if err != nil {
		http.Error(w, "failed to load workspace", http.StatusInternalServerError)
		s.logger.Error("list roster failed", "error", err)
		return
	}
	data := s.baseData(r, domain.ViewWorkplace)
	data["Tab"] = tab
	data["Messages"] = messages
	data["Reviews"] = reviews
	data["Members"] = members
	data["Error"] = errMsg
	if err := s.renderPage(w, data,
		"pages/workplace.html",
		"partials/chat_messages.html",
		"partials/review_list.html"); err != nil {
		s.logger.Error("render workplace failed", "error", err)
	}
}

func (s *Server) renderPrivacy(w http.ResponseWriter, r *http.Request) {
	data := s.baseData(r, domain.ViewPrivacy)
	if err := s.renderPage(w, data, "pages/privacy.html"); err != nil {
		s.logger.Error("render privacy failed", "error", err)
	}
}

// boardEntry pairs a boardroom message with whether it was sent by the
// identity currently viewing the board.
type boardEntry struct {
	Msg  *domain.InternalMessage
	Mine bool
}

func (s *Server) renderAdmin(w http.ResponseWriter, r *http.Request, errMsg string) {
	data := s.baseData(r, domain.ViewAdmin)
	data["Error"] = errMsg
	if !s.adminUnlocked(r) {
		data["Unlocked"] = false
		data["Tab"] = ""
		data["Board"] = nil
		if err := s.renderPage(w, data,
			"pages/admin.html", "partials/board_messages.html"); err != nil {
			s.logger.Error("render admin failed", "error", err)
		}
		return
	}

	ctx := r.Context()
	members, err := s.studio.Roster(ctx)
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		s.logger.Error("list roster failed", "error", err)
		return
	}
	company, err := s.studio.Company(ctx)
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		s.logger.Error("load company info failed", "error", err)
		return
	}
	identity := r.URL.Query().Get("identity")
	if !domain.ValidBoardIdentity(identity) {
		identity = domain.BoardIdentities()[0]
	}
	messages, err := s.studio.Board(ctx)
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		s.logger.Error("list board failed", "error", err)
		return
	}
	entries := make([]boardEntry, 0, len(messages))
	for _, m := range messages {
		entries = append(entries, boardEntry{Msg: m, Mine: s.studio.Aligned(m, identity)})
	}

	tab := r.URL.Query().Get("tab")
	if tab != "board" && tab != "settings" {
		tab = "team"
	}
	data["Unlocked"] = true
	data["Tab"] = tab
	data["Members"] = members
	data["Company"] = company
	data["Identity"] = identity
	data["Identities"] = domain.BoardIdentities()
	data["Board"] = entries
	if err := s.renderPage(w, data,
		"pages/admin.html", "partials/board_messages.html"); err != nil {
		s.logger.Error("render admin failed", "error", err)
	}
}
