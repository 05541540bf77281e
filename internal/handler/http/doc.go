// Package http implements the HTTP transport of the admin record store.
//
// It wires the chi router, request handlers and middleware. Tracing, access
// logging, authentication and the admin check run here before requests reach
// the service layer. Error bodies carry the app.Msg* strings the client maps
// back to typed errors.
package http
