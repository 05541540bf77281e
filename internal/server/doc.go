// Package server runs the transport servers of the admin record store.
//
// It binds the HTTP and gRPC listeners, serves them until a stop signal and
// shuts every enabled transport down gracefully.
package server
