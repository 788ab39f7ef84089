// Package server implements the HTTP side of the hello server: the static
// route table, its handlers, environment configuration, and the helpers that
// bind and stop the listening http.Server.
//
// Building the handler (SetupRoutes) never touches the network, so the router
// can be exercised in-process with httptest. Binding happens only in
// StartServer, which the cmd/server entry point calls.
package server
