package booking

import (
	"time"

	"nourishcoach/internal/timegrid"
)

// Appointment is one committed consultation request. Date is an ISO
// YYYY-MM-DD calendar day; Time is the slot start within that day.
type Appointment struct {
	ID        int       `db:"id" json:"id"`
	Date      string    `db:"appt_date" json:"date"`
	Time      string    `db:"appt_time" json:"time"`
	Name      string    `db:"client_name" json:"name"`
	Phone     string    `db:"client_phone" json:"phone"`
	Email     string    `db:"client_email" json:"email,omitempty"`
	Goal      string    `db:"goal" json:"goal"`
	Notes     string    `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SlotView is one grid slot annotated with its booking status for a day.
type SlotView struct {
	Time   string          `json:"time" example:"10:30"`
	Status timegrid.Status `json:"status" example:"available"`
}

type DayGridResponse struct {
	Date  string     `json:"date" example:"2026-08-28"`
	Slots []SlotView `json:"slots"`
}

type BookRequest struct {
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Name  string `json:"name" binding:"required" validate:"required"`
	Phone string `json:"phone" binding:"required" validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Goal  string `json:"goal,omitempty"`
	Notes string `json:"notes,omitempty"`
}
