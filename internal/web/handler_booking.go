package web

import (
	"net/http"
	"strings"

	"github.com/jshotsmedia/studio/internal/domain"
)

func (s *Server) handleSubmitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	form := domain.Booking{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Phone:       strings.TrimSpace(r.FormValue("phone")),
		ServiceType: r.FormValue("service_type"),
		Location:    r.FormValue("location"),
		Date:        r.FormValue("date"),
		TimeSlot:    r.FormValue("time_slot"),
		Notes:       strings.TrimSpace(r.FormValue("notes")),
	}
	if _, err := s.booking.Submit(r.Context(), form); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.renderBooking(w, r, err.Error())
		return
	}
	http.Redirect(w, r, "/views/booking", http.StatusSeeOther)
}

func (s *Server) handleReopenBooking(w http.ResponseWriter, r *http.Request) {
	s.booking.Reopen()
	http.Redirect(w, r, "/views/booking", http.StatusSeeOther)
}
