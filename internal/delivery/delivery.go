// Package delivery defines the process entry points started by the fx app.
package delivery

import "context"

// Delivery is a server that blocks serving until it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
