package app

import (
	"testing"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

func TestEditorForCreate(t *testing.T) {
	e := editorForCreate()

	if e.Mode != EditorCreate {
		t.Fatalf("unexpected mode %q", e.Mode)
	}
	if e.Title != "" || e.Description != "" || e.TicketID != "" {
		t.Fatalf("create editor must start blank: %+v", e)
	}
	if e.Status != domain.StatusOpen {
		t.Fatalf("create editor must default status to open, got %q", e.Status)
	}
	if e.Message != "" || e.Errors != nil {
		t.Fatalf("create editor must clear prior errors: %+v", e)
	}
	if !e.IsOpen() || !e.CanSubmit() {
		t.Fatalf("create editor must be open and submittable")
	}
}

func TestEditorForTicket(t *testing.T) {
	ticket := domain.Ticket{
		ID:          "TKT-00000001",
		Title:       "Printer jam",
		Description: "Tray two",
		Status:      domain.StatusInProgress,
	}

	edit := editorForTicket(EditorEdit, ticket)
	if edit.TicketID != ticket.ID || edit.Title != ticket.Title || edit.Description != ticket.Description || edit.Status != ticket.Status {
		t.Fatalf("edit editor not populated from ticket: %+v", edit)
	}
	if !edit.CanSubmit() {
		t.Fatalf("edit editor must be submittable")
	}

	view := editorForTicket(EditorView, ticket)
	if !view.IsOpen() {
		t.Fatalf("view editor must be open")
	}
	if view.CanSubmit() {
		t.Fatalf("view editor is read-only, submit must not be actionable")
	}
}

func TestClosedEditor(t *testing.T) {
	e := closedEditor()
	if e.IsOpen() || e.CanSubmit() {
		t.Fatalf("closed editor must be neither open nor submittable")
	}
}
