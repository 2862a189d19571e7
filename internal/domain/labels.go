package domain

// GalleryCategoryAll is a filter-only pseudo-category; items are never stored
// under it.
const GalleryCategoryAll = "All"

// GalleryCategories lists the selectable gallery filters, All first.
func GalleryCategories() []string {
	return []string{GalleryCategoryAll, "Portraits", "Events", "Nature", "Urban"}
}

// BoardIdentities is the fixed set of sender identities for the private
// boardroom.
func BoardIdentities() []string {
	return []string{"Director", "Secretary", "Mobile Handler"}
}

// ValidBoardIdentity reports whether sender is one of the fixed boardroom
// identities.
func ValidBoardIdentity(sender string) bool {
	for _, id := range BoardIdentities() {
		if sender == id {
			return true
		}
	}
	return false
}

// Locations lists the Lagos areas offered on the booking form.
func Locations() []string {
	return []string{
		"Ikeja", "Lekki Phase 1", "Victoria Island", "Ikoyi", "Yaba",
		"Surulere", "Ajah", "Magodo", "Maryland", "Festac",
	}
}

// TimeSlots lists the bookable session windows.
func TimeSlots() []string {
	return []string{
		"08:00 AM - 10:00 AM",
		"10:00 AM - 12:00 PM",
		"12:00 PM - 02:00 PM",
		"02:00 PM - 04:00 PM",
		"04:00 PM - 06:00 PM",
		"06:00 PM - 08:00 PM",
	}
}

// ServiceTypes lists the bookable services.
func ServiceTypes() []string {
	return []string{"Photography", "Videography", "Both"}
}
