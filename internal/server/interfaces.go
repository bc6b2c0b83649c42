package server

// Server defines the lifecycle contract of the relay's transport server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer binds the listen address and serves requests until a stop
	// signal arrives. A bind failure is returned immediately.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
