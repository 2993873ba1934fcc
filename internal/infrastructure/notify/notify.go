// Package notify provides the default notification sink: messages are logged
// and counted. A real rendering layer supplies its own sink wired to its
// live regions; this one keeps headless runs observable.
package notify

import (
	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/app/metrics"
)

type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Polite(message string) {
	metrics.NotificationsTotal.WithLabelValues("polite").Inc()
	n.log.Info().Str("channel", "polite").Msg(message)
}

func (n *LogNotifier) Assertive(message string) {
	metrics.NotificationsTotal.WithLabelValues("assertive").Inc()
	n.log.Warn().Str("channel", "assertive").Msg(message)
}
