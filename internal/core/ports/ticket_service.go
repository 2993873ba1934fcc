package ports

import (
	"context"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

// TicketService defines the ticket use cases. List and Delete are subject to
// the service's failure-injection strategy and may return a network fault.
type TicketService interface {
	// Validate checks a ticket form without touching storage. Checks run
	// title, then status, then description; only the first violation is
	// reported.
	Validate(title string, status domain.TicketStatus, description string) error
	// List returns the full stored collection, newest-created first.
	List(ctx context.Context) ([]domain.Ticket, error)
	// Create validates, assigns a fresh id and timestamps, and prepends the
	// ticket to the stored collection.
	Create(ctx context.Context, title, description string, status domain.TicketStatus) (*domain.Ticket, error)
	// Update validates and rewrites the matching record's title, description,
	// status, and updatedAt. Relative order of the collection is preserved.
	Update(ctx context.Context, id, title, description string, status domain.TicketStatus) error
	// Delete removes the matching record. Deleting an absent id is a no-op
	// success.
	Delete(ctx context.Context, id string) error
}

// FailureStrategy decides, per call, whether a backing operation should
// report a simulated transient failure. Implementations must be cheap and
// synchronous: the draw happens inline on the calling goroutine.
type FailureStrategy interface {
	ShouldFail() bool
}
