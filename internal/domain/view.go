package domain

import "strings"

// ViewState identifies one of the site's mutually exclusive screens.
type ViewState string

const (
	ViewHome      ViewState = "home"
	ViewBooking   ViewState = "booking"
	ViewWorkplace ViewState = "workplace"
	ViewTeam      ViewState = "team"
	ViewGallery   ViewState = "gallery"
	ViewPrivacy   ViewState = "privacy"
	ViewAdmin     ViewState = "admin"
)

// ParseView maps a view name to its ViewState. Unrecognized names resolve to
// the home screen.
func ParseView(name string) ViewState {
	switch ViewState(strings.ToLower(strings.TrimSpace(name))) {
	case ViewBooking:
		return ViewBooking
	case ViewWorkplace:
		return ViewWorkplace
	case ViewTeam:
		return ViewTeam
	case ViewGallery:
		return ViewGallery
	case ViewPrivacy:
		return ViewPrivacy
	case ViewAdmin:
		return ViewAdmin
	default:
		return ViewHome
	}
}

// Views lists every screen the router can dispatch to.
func Views() []ViewState {
	return []ViewState{
		ViewHome, ViewBooking, ViewWorkplace, ViewTeam,
		ViewGallery, ViewPrivacy, ViewAdmin,
	}
}
