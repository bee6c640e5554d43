package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled, a termination signal
	// arrives or a listener fails. It shuts everything down before returning.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	// Calling it more than once is a no-op.
	Shutdown(ctx context.Context)
}

// ClientStopper stops every running Matrix client. Implemented by
// service.ClientRegistry.
type ClientStopper interface {
	StopAll(ctx context.Context)
}
