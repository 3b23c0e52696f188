package notify

import (
	"context"
	"log"

	"oficina_api/internal/usecase/interfaces"
)

// LogNotifier is the default notification sink: one log line per
// message. A real deployment would swap in a push/toast delivery
// channel behind the same port.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Success(_ context.Context, message string) {
	log.Printf("[notify] %s", message)
}
