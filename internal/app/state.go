package app

import "github.com/ticketapp/ticket-system/internal/core/domain"

// EditorMode is the ticket editor's state machine position.
type EditorMode string

const (
	EditorClosed EditorMode = "closed"
	EditorCreate EditorMode = "create"
	EditorEdit   EditorMode = "edit"
	// EditorView populates the form like EditorEdit but disables submit.
	EditorView EditorMode = "view"
)

// EditorState tracks the ticket editor. TicketID is set in edit and view
// modes. Message and Errors carry the top-level and per-field messages from
// the last failed submit.
type EditorState struct {
	Mode        EditorMode
	TicketID    string
	Title       string
	Description string
	Status      domain.TicketStatus
	Message     string
	Errors      map[string]string
}

// IsOpen reports whether the editor is showing.
func (e EditorState) IsOpen() bool {
	return e.Mode == EditorCreate || e.Mode == EditorEdit || e.Mode == EditorView
}

// CanSubmit reports whether the submit action is actionable: only create and
// edit accept a submit, view is read-only.
func (e EditorState) CanSubmit() bool {
	return e.Mode == EditorCreate || e.Mode == EditorEdit
}

func closedEditor() EditorState {
	return EditorState{Mode: EditorClosed}
}

// editorForCreate opens a blank form: fields and prior errors cleared, status
// defaulted to open.
func editorForCreate() EditorState {
	return EditorState{Mode: EditorCreate, Status: domain.StatusOpen}
}

// editorForTicket opens the form populated from an existing ticket, clearing
// prior errors.
func editorForTicket(mode EditorMode, t domain.Ticket) EditorState {
	return EditorState{
		Mode:        mode,
		TicketID:    t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
	}
}

// DeleteDialogState tracks the delete-confirmation dialog. Exactly one target
// is tracked at a time; the rendering layer uses IsOpen and the target fields
// for display and focus containment.
type DeleteDialogState struct {
	IsOpen      bool
	TargetID    string
	TargetTitle string
}

// State is the complete ephemeral UI state, owned by the App coordinator and
// handed to the rendering layer on every change. Treat a received State as a
// read-only snapshot.
type State struct {
	Page    Page
	User    *domain.User
	Tickets []domain.Ticket
	Editor  EditorState
	Dialog  DeleteDialogState

	// FormError and FieldErrors carry the last auth form failure (login or
	// signup page).
	FormError   string
	FieldErrors map[string]string
}
