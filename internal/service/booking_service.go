package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jshotsmedia/studio/internal/domain"
)

// DefaultSubmitDelay simulates the upstream booking call; there is no real
// backend to submit to.
const DefaultSubmitDelay = time.Second

// BookingService validates and "submits" booking requests. A submission only
// flips state after a fixed delay, and the last submitted form is retained so
// that reopening the form shows the previous values unchanged.
type BookingService struct {
	delay  time.Duration
	logger *slog.Logger

	mu        sync.Mutex
	last      *domain.Booking
	submitted bool
}

func NewBookingService(delay time.Duration, logger *slog.Logger) *BookingService {
	return &BookingService{delay: delay, logger: logger}
}

// DefaultForm returns the booking form's initial field values.
func DefaultForm() domain.Booking {
	return domain.Booking{
		ServiceType: domain.ServiceTypes()[0],
		Location:    domain.Locations()[0],
		TimeSlot:    domain.TimeSlots()[0],
	}
}

// Submit validates the booking, waits out the simulated upstream call, and
// returns a confirmation echoing the submitted name, service type, and
// location. There is no availability or double-booking check.
func (s *BookingService) Submit(ctx context.Context, b domain.Booking) (*domain.Confirmation, error) {
	if err := validateStruct(b); err != nil {
		return nil, fmt.Errorf("invalid booking: %w", err)
	}

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.Lock()
	s.last = &b
	s.submitted = true
	s.mu.Unlock()

	s.logger.Info("booking request received",
		"service_type", b.ServiceType, "location", b.Location, "date", b.Date, "slot", b.TimeSlot)

	return &domain.Confirmation{
		Name:        b.Name,
		ServiceType: b.ServiceType,
		Location:    b.Location,
	}, nil
}

// Reopen returns to the form without clearing the previous submission's
// values. Kept deliberately: "book another" shows the prior data pre-filled.
func (s *BookingService) Reopen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = false
}

// Current returns the form values to render and whether the confirmation
// screen is active.
func (s *BookingService) Current() (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return DefaultForm(), s.submitted
	}
	return *s.last, s.submitted
}
