package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer serves requests and blocks until SIGINT, SIGTERM or SIGQUIT.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
