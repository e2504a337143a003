// Package workers runs the background processes of the ledger node.
// It defines the Worker interface and a Workers aggregate that runs every
// worker until the node shuts down.
package workers

import "context"

// Worker is a background process. Run blocks until ctx is cancelled or the
// worker fails for good; a cancelled context is not a failure.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
