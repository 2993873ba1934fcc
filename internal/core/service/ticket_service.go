package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/kv"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// TicketService implements ticket validation and CRUD over the persistent
// store. List and Delete draw on the failure strategy to model transient
// backend failure.
type TicketService struct {
	store    ports.Store
	failures ports.FailureStrategy
	log      zerolog.Logger
}

// NewTicketService builds a TicketService. A nil failures strategy disables
// failure injection.
func NewTicketService(store ports.Store, failures ports.FailureStrategy, log zerolog.Logger) *TicketService {
	if failures == nil {
		failures = NoFailures()
	}
	return &TicketService{store: store, failures: failures, log: log}
}

// Field order is the reporting order: title, then status, then description.
// The max tag mirrors domain.MaxDescriptionLength.
type ticketForm struct {
	Title       string `validate:"required,notblank"`
	Status      string `validate:"oneof=open in_progress closed"`
	Description string `validate:"max=500"`
}

// Validate checks a ticket form without touching storage. Only the first
// violation is reported.
func (s *TicketService) Validate(title string, status domain.TicketStatus, description string) error {
	return firstViolation(ticketForm{Title: title, Status: string(status), Description: description})
}

// List returns the full stored collection, newest-created first. The empty
// collection is an empty slice, never nil.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	if s.failures.ShouldFail() {
		s.log.Warn().Msg("simulated backend failure on list")
		return nil, domain.Transient("Could not load tickets. Please try again.")
	}
	tickets := kv.ReadJSON(ctx, s.store, ports.TicketsKey, []domain.Ticket{})
	if tickets == nil {
		// a stored JSON null decodes to a nil slice
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

// Create validates, trims title and description, assigns a fresh id and equal
// createdAt/updatedAt timestamps, and prepends the ticket to the stored
// collection.
func (s *TicketService) Create(ctx context.Context, title, description string, status domain.TicketStatus) (*domain.Ticket, error) {
	if err := s.Validate(title, status, description); err != nil {
		return nil, err
	}

	tickets := kv.ReadJSON(ctx, s.store, ports.TicketsKey, []domain.Ticket{})
	now := time.Now().UTC()
	ticket := domain.Ticket{
		ID:          newTicketID(tickets),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tickets = append([]domain.Ticket{ticket}, tickets...)
	if err := kv.WriteJSON(ctx, s.store, ports.TicketsKey, tickets); err != nil {
		s.log.Error().Err(err).Msg("failed to persist tickets")
		return nil, domain.Transient("Could not save the ticket. Please try again.")
	}

	s.log.Info().Str("ticket_id", ticket.ID).Str("status", string(status)).Msg("ticket created")
	return &ticket, nil
}

// Update validates and rewrites the matching record's title, description,
// status, and updatedAt in place. Non-matching records and collection order
// are untouched.
func (s *TicketService) Update(ctx context.Context, id, title, description string, status domain.TicketStatus) error {
	if err := s.Validate(title, status, description); err != nil {
		return err
	}

	tickets := kv.ReadJSON(ctx, s.store, ports.TicketsKey, []domain.Ticket{})
	for i := range tickets {
		if tickets[i].ID != id {
			continue
		}
		tickets[i].Title = strings.TrimSpace(title)
		tickets[i].Description = strings.TrimSpace(description)
		tickets[i].Status = status
		tickets[i].UpdatedAt = time.Now().UTC()

		if err := kv.WriteJSON(ctx, s.store, ports.TicketsKey, tickets); err != nil {
			s.log.Error().Err(err).Msg("failed to persist tickets")
			return domain.Transient("Could not save the ticket. Please try again.")
		}
		s.log.Info().Str("ticket_id", id).Str("status", string(status)).Msg("ticket updated")
		return nil
	}

	return domain.Validation("Ticket not found", nil)
}

// Delete removes the matching record, preserving the order of the rest.
// Deleting an absent id is a no-op success.
func (s *TicketService) Delete(ctx context.Context, id string) error {
	if s.failures.ShouldFail() {
		s.log.Warn().Str("ticket_id", id).Msg("simulated backend failure on delete")
		return domain.Transient("Could not delete the ticket. Please try again.")
	}

	tickets := kv.ReadJSON(ctx, s.store, ports.TicketsKey, []domain.Ticket{})
	kept := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tickets) {
		return nil
	}

	if err := kv.WriteJSON(ctx, s.store, ports.TicketsKey, kept); err != nil {
		s.log.Error().Err(err).Msg("failed to persist tickets")
		return domain.Transient("Could not delete the ticket. Please try again.")
	}

	s.log.Info().Str("ticket_id", id).Msg("ticket deleted")
	return nil
}

// newTicketID generates an id in the format TKT-XXXXXXXX, retrying on the
// unlikely collision with an existing ticket.
func newTicketID(existing []domain.Ticket) string {
	for {
		id := generateTicketID()
		taken := false
		for _, t := range existing {
			if t.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

func generateTicketID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("TKT-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("TKT-%08X", b)
}
