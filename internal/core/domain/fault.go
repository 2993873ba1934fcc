package domain

import "errors"

// ErrNoDocument is returned by store backends when a key has never been
// written (or was removed).
var ErrNoDocument = errors.New("document not found")

// FaultKind tags a service failure so callers can branch without string
// matching.
type FaultKind string

const (
	// KindValidation marks bad input. Retrying with the same input always
	// fails the same way.
	KindValidation FaultKind = "validation"
	// KindAuth marks a credential mismatch. Field-attributable but
	// intentionally non-specific.
	KindAuth FaultKind = "auth"
	// KindNetwork marks a transient backend failure, safe to retry unchanged.
	KindNetwork FaultKind = "network"
)

// Fault is the uniform failure value returned by every service operation.
// Fields maps field names to per-field messages when the failure is
// attributable to specific inputs.
type Fault struct {
	Kind    FaultKind
	Message string
	Fields  map[string]string
}

func (f *Fault) Error() string { return f.Message }

// Validation builds a validation fault. fields may be nil when the failure is
// not attributable to a single input.
func Validation(message string, fields map[string]string) *Fault {
	return &Fault{Kind: KindValidation, Message: message, Fields: fields}
}

// FieldViolation builds a validation fault attributed to exactly one field.
func FieldViolation(field, message string) *Fault {
	return Validation(message, map[string]string{field: message})
}

// AuthFailure builds an auth fault with the given fields marked invalid.
func AuthFailure(message string, fields map[string]string) *Fault {
	return &Fault{Kind: KindAuth, Message: message, Fields: fields}
}

// Transient builds a network fault.
func Transient(message string) *Fault {
	return &Fault{Kind: KindNetwork, Message: message}
}

// KindOf extracts the fault kind from err, or "" when err carries no Fault.
func KindOf(err error) FaultKind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// FieldsOf extracts the per-field messages from err, or nil.
func FieldsOf(err error) map[string]string {
	var f *Fault
	if errors.As(err, &f) {
		return f.Fields
	}
	return nil
}
