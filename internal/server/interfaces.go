package server

import "context"

// Server is the lifecycle contract of the sandbox server.
type Server interface {
	// Run serves requests until ctx is cancelled or a stop signal arrives,
	// then shuts down gracefully.
	Run(ctx context.Context) error
}
