// Package delivery defines the contract every transport front end implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the composition root.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
