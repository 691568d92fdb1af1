// Package delivery defines the contract every serving surface (HTTP API,
// background poller) implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running serving loop started by main and stopped
// through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
