package domain

import "time"

// TicketStatus represents the lifecycle state of a support ticket.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusClosed     TicketStatus = "closed"
)

// Statuses lists every allowed ticket status, in display order.
var Statuses = []TicketStatus{StatusOpen, StatusInProgress, StatusClosed}

// IsValid reports whether s is one of the enumerated statuses.
func (s TicketStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// MaxDescriptionLength bounds the ticket description field.
const MaxDescriptionLength = 500

// Ticket is the core aggregate. ID and CreatedAt are assigned on creation and
// never change afterwards; UpdatedAt moves on every update. The stored
// collection is ordered newest-created first.
type Ticket struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TicketStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
