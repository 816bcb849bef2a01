package booking

import (
	"context"
	"errors"
	"regexp"
	"time"

	"nourishcoach/internal/api"
	"nourishcoach/internal/logger"
	"nourishcoach/internal/metrics"
	"nourishcoach/internal/timegrid"
)

var (
	ErrSlotTaken       = errors.New("slot is already booked")
	ErrSlotOffGrid     = errors.New("time does not lie on the booking grid")
	ErrDateOutOfWindow = errors.New("date is outside the booking window")
)

// phonePattern matches the booking form's phone check: optional +, a digit,
// then at least six more digits, spaces or dashes.
var phonePattern = regexp.MustCompile(`^\+?\d[\d\s-]{6,}$`)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError carries the field-level messages the booking form renders
// inline. It blocks the commit but is not a server fault.
type ValidationError struct {
	Fields []api.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

type Service interface {
	// DayGrid returns the full slot grid for the date with per-slot status.
	// A selection matching a booked slot is cleared before resolution.
	DayGrid(ctx context.Context, date string, selected *timegrid.TimeOfDay) (*DayGridResponse, error)

	// Book validates the request and commits the slot. Returns
	// *ValidationError for field failures and ErrSlotTaken when another
	// client holds the slot.
	Book(ctx context.Context, req BookRequest) (*Appointment, error)
}

// ConfirmationSender queues the post-commit confirmation email. Delivery is
// best effort; a queue failure never rolls back a committed booking.
type ConfirmationSender interface {
	SendAppointmentConfirmation(ctx context.Context, email, name, goal, date, slot string) error
}

type service struct {
	ledger   Ledger
	email    ConfirmationSender
	open     timegrid.TimeOfDay
	close    timegrid.TimeOfDay
	interval int
	now      func() time.Time
}

func NewService(ledger Ledger, email ConfirmationSender, open, close timegrid.TimeOfDay, intervalMinutes int) Service {
	return &service{
		ledger:   ledger,
		email:    email,
		open:     open,
		close:    close,
		interval: intervalMinutes,
		now:      time.Now,
	}
}

func (s *service) DayGrid(ctx context.Context, date string, selected *timegrid.TimeOfDay) (*DayGridResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, err
	}

	grid, err := timegrid.Generate(s.open, s.close, s.interval)
	if err != nil {
		return nil, err
	}

	bookedList, err := s.ledger.BookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[timegrid.TimeOfDay]struct{}, len(bookedList))
	for _, t := range bookedList {
		booked[t] = struct{}{}
	}

	selected = timegrid.ClearConflictingSelection(selected, booked)

	slots := make([]SlotView, 0, len(grid))
	for _, t := range grid {
		slots = append(slots, SlotView{
			Time:   t.String(),
			Status: timegrid.Resolve(t, booked, selected),
		})
	}

	return &DayGridResponse{Date: date, Slots: slots}, nil
}

func (s *service) Book(ctx context.Context, req BookRequest) (*Appointment, error) {
	fields, slot := s.validate(req)
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	appt := &Appointment{
		Date:  req.Date,
		Time:  slot.String(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Goal:  req.Goal,
		Notes: req.Notes,
	}

	committed, err := s.ledger.TryCommit(ctx, appt)
	if err != nil {
		return nil, err
	}
	if !committed {
		metrics.RecordAppointment("conflict")
		return nil, ErrSlotTaken
	}
	metrics.RecordAppointment("committed")

	if s.email != nil && appt.Email != "" {
		if err := s.email.SendAppointmentConfirmation(ctx, appt.Email, appt.Name, appt.Goal, appt.Date, appt.Time); err != nil {
			logger.Errorf("Failed to queue confirmation for %s: %v", appt.Email, err)
		}
	}

	return appt, nil
}

// validate applies the booking form rules and resolves the requested time
// against the grid. It returns the parsed slot so Book commits the
// normalized "HH:MM" representation.
func (s *service) validate(req BookRequest) ([]api.FieldError, timegrid.TimeOfDay) {
	var fields []api.FieldError

	if req.Name == "" {
		fields = append(fields, api.FieldError{Field: "name", Message: "please enter your full name"})
	}
	if !phonePattern.MatchString(req.Phone) {
		fields = append(fields, api.FieldError{Field: "phone", Message: "enter a valid phone number"})
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		fields = append(fields, api.FieldError{Field: "email", Message: "enter a valid email or leave it blank"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		fields = append(fields, api.FieldError{Field: "date", Message: "date must be YYYY-MM-DD"})
	} else {
		// Compare calendar days, not instants: today is the caller's wall
		// date re-parsed at midnight. Bookings open today through +30 days.
		today, _ := time.Parse("2006-01-02", s.now().Format("2006-01-02"))
		if date.Before(today) || date.After(today.AddDate(0, 0, 30)) {
			fields = append(fields, api.FieldError{Field: "date", Message: "choose a date within the next 30 days"})
		}
	}

	slot, err := timegrid.Parse(req.Time)
	if err != nil {
		fields = append(fields, api.FieldError{Field: "time", Message: "please select a time slot"})
		return fields, timegrid.TimeOfDay{}
	}
	if !s.onGrid(slot) {
		fields = append(fields, api.FieldError{Field: "time", Message: "time is not a bookable slot"})
	}

	return fields, slot
}

func (s *service) onGrid(t timegrid.TimeOfDay) bool {
	if t.Before(s.open) || t.After(s.close) {
		return false
	}
	return (t.Minutes()-s.open.Minutes())%s.interval == 0
}
