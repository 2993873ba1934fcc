// Package app owns the ephemeral UI state and coordinates the router, the
// auth and ticket services, and the form/modal state machines. Rendering is
// external: every state change is pushed to the Renderer collaborator, and
// user-facing messages go through the notification sink.
package app

import (
	"context"
	"errors"
	"slices"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/app/metrics"
	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// Renderer is the rendering collaborator. Render receives a read-only state
// snapshot and is fire-and-forget.
type Renderer interface {
	Render(State)
}

// App is the single owner of the application state. All handlers run to
// completion on the calling goroutine; the app is built for one event at a
// time and is not safe for concurrent use.
type App struct {
	auth     ports.AuthService
	tickets  ports.TicketService
	notifier ports.Notifier
	renderer Renderer
	log      zerolog.Logger
	state    State
}

func New(auth ports.AuthService, tickets ports.TicketService, notifier ports.Notifier, renderer Renderer, log zerolog.Logger) *App {
	return &App{
		auth:     auth,
		tickets:  tickets,
		notifier: notifier,
		renderer: renderer,
		log:      log,
		state:    State{Page: PageLanding, Editor: closedEditor()},
	}
}

// State returns the current state snapshot.
func (a *App) State() State { return a.state }

func (a *App) render() {
	if a.renderer != nil {
		a.renderer.Render(a.state)
	}
}

// Navigate handles a navigation event: initial load, hash change, or a
// programmatic redirect. The session guard is re-evaluated on every call,
// never cached, since session state can change between navigations. The
// resolved page is returned.
func (a *App) Navigate(ctx context.Context, rawPath string) Page {
	page := ResolvePath(rawPath)
	if page.RequiresSession() && a.auth.Session(ctx) == nil {
		metrics.GuardRedirectsTotal.Inc()
		a.log.Info().Str("path", rawPath).Msg("guard redirect to login")
		a.notifier.Assertive("Session expired. Please log in.")
		page = PageLogin
	}

	a.state.Page = page
	a.state.FormError = ""
	a.state.FieldErrors = nil
	a.state.Editor = closedEditor()
	a.state.Dialog = DeleteDialogState{}
	if page.showsTickets() {
		a.loadTickets(ctx)
	}
	a.render()
	return page
}

func (a *App) loadTickets(ctx context.Context) {
	tickets, err := a.tickets.List(ctx)
	if err != nil {
		metrics.TicketLoadsTotal.WithLabelValues("error").Inc()
		a.log.Warn().Err(err).Msg("ticket load failed")
		a.notifier.Assertive(err.Error())
		a.state.Tickets = []domain.Ticket{}
		return
	}
	metrics.TicketLoadsTotal.WithLabelValues("ok").Inc()
	a.state.Tickets = tickets
}

// Login authenticates and, on success, redirects to the dashboard. On
// failure the form errors land in the state and the page does not change.
func (a *App) Login(ctx context.Context, email, password string) bool {
	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.applyFormFault(err)
		a.render()
		return false
	}
	a.state.User = user
	a.Navigate(ctx, PageDashboard.Path())
	return true
}

// Signup registers, establishes a session, and redirects to the dashboard.
func (a *App) Signup(ctx context.Context, email, password string) bool {
	user, err := a.auth.Signup(ctx, email, password)
	if err != nil {
		a.applyFormFault(err)
		a.render()
		return false
	}
	a.state.User = user
	a.Navigate(ctx, PageDashboard.Path())
	return true
}

// Logout clears the session and returns to the landing page.
func (a *App) Logout(ctx context.Context) {
	a.auth.Logout(ctx)
	a.state.User = nil
	a.state.Tickets = nil
	a.Navigate(ctx, PageLanding.Path())
}

func (a *App) applyFormFault(err error) {
	var f *domain.Fault
	if errors.As(err, &f) {
		a.state.FormError = f.Message
		a.state.FieldErrors = f.Fields
		return
	}
	a.state.FormError = err.Error()
	a.state.FieldErrors = nil
}

// OpenCreate opens a blank editor with status defaulted to open.
func (a *App) OpenCreate() {
	a.state.Editor = editorForCreate()
	a.render()
}

// OpenEdit opens the editor populated from the cached ticket. Returns false
// when the id is not in the cache.
func (a *App) OpenEdit(id string) bool { return a.openFor(EditorEdit, id) }

// OpenView opens the editor read-only.
func (a *App) OpenView(id string) bool { return a.openFor(EditorView, id) }

func (a *App) openFor(mode EditorMode, id string) bool {
	t, ok := a.ticketByID(id)
	if !ok {
		return false
	}
	a.state.Editor = editorForTicket(mode, t)
	a.render()
	return true
}

// SubmitEditor submits the form. Only actionable from create and edit; on
// success the editor closes and the ticket cache refreshes. On failure the
// submitted values and the field errors stay in the editor state.
func (a *App) SubmitEditor(ctx context.Context, title, description string, status domain.TicketStatus) bool {
	if !a.state.Editor.CanSubmit() {
		return false
	}

	var operation string
	var err error
	switch a.state.Editor.Mode {
	case EditorCreate:
		operation = "create"
		_, err = a.tickets.Create(ctx, title, description, status)
	case EditorEdit:
		operation = "update"
		err = a.tickets.Update(ctx, a.state.Editor.TicketID, title, description, status)
	}
	if err != nil {
		a.state.Editor.Title = title
		a.state.Editor.Description = description
		a.state.Editor.Status = status
		a.state.Editor.Message = err.Error()
		a.state.Editor.Errors = domain.FieldsOf(err)
		a.render()
		return false
	}

	metrics.MutationsTotal.WithLabelValues(operation).Inc()
	a.state.Editor = closedEditor()
	a.loadTickets(ctx)
	if operation == "create" {
		a.notifier.Polite("Ticket created.")
	} else {
		a.notifier.Polite("Ticket updated.")
	}
	a.render()
	return true
}

// CancelEditor closes the editor from any open state without side effects.
func (a *App) CancelEditor() {
	a.state.Editor = closedEditor()
	a.render()
}

// RequestDelete opens the delete confirmation for the ticket. A second
// request while the dialog is open is ignored; the prior target stands until
// it is resolved or cancelled.
func (a *App) RequestDelete(id string) bool {
	if a.state.Dialog.IsOpen {
		return false
	}
	t, ok := a.ticketByID(id)
	if !ok {
		return false
	}
	a.state.Dialog = DeleteDialogState{IsOpen: true, TargetID: t.ID, TargetTitle: t.Title}
	a.render()
	return true
}

// CancelDelete closes the dialog discarding the target. Also the handler for
// an escape signal from the rendering layer.
func (a *App) CancelDelete() {
	a.state.Dialog = DeleteDialogState{}
	a.render()
}

// ConfirmDelete removes the target from the in-memory cache immediately,
// then invokes the backing delete; when that fails the cache is restored
// from the pre-delete snapshot and the failure is announced.
func (a *App) ConfirmDelete(ctx context.Context) bool {
	if !a.state.Dialog.IsOpen {
		return false
	}
	id := a.state.Dialog.TargetID

	snapshot := slices.Clone(a.state.Tickets)
	err := applyOptimistic(snapshot,
		func() {
			a.state.Tickets = withoutTicket(a.state.Tickets, id)
			a.state.Dialog = DeleteDialogState{}
			a.render()
		},
		func() error { return a.tickets.Delete(ctx, id) },
		func(prev []domain.Ticket) {
			a.state.Tickets = prev
			a.render()
		},
	)
	if err != nil {
		metrics.RollbacksTotal.Inc()
		a.log.Warn().Err(err).Str("ticket_id", id).Msg("delete rolled back")
		a.notifier.Assertive(err.Error())
		return false
	}

	metrics.MutationsTotal.WithLabelValues("delete").Inc()
	a.notifier.Polite("Ticket deleted.")
	return true
}

func (a *App) ticketByID(id string) (domain.Ticket, bool) {
	for _, t := range a.state.Tickets {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Ticket{}, false
}

func withoutTicket(tickets []domain.Ticket, id string) []domain.Ticket {
	kept := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return kept
}
