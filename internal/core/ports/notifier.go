package ports

// Notifier is the collaborator-facing notification sink, mirroring the two
// live-region politeness levels of the rendering layer. Both channels accept
// a plain message string and are fire-and-forget.
type Notifier interface {
	// Polite delivers a non-interrupting informational message.
	Polite(message string)
	// Assertive delivers an interrupting error message.
	Assertive(message string)
}
