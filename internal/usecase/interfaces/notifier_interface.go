package interfaces

import "context"

// INotifier is the sink for human-readable success messages emitted
// after an order is submitted. Validation failures are returned inline
// to the caller and never go through the sink.
type INotifier interface {
	Success(ctx context.Context, message string)
}
