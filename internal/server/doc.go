// Package server runs the relay's inbound HTTP server.
//
// It binds the ClickNLoad listen address, serves requests until SIGINT,
// SIGTERM or SIGQUIT is received, and then shuts the server down
// gracefully.
package server
