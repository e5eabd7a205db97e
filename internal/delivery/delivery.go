// Package delivery defines the servers started by the binaries.
package delivery

import "context"

// Delivery is a long-running server such as the admin API or the revalidation worker.
type Delivery interface {
	Serve(ctx context.Context) error
}
