// Package server runs the sandbox HTTP server and shuts it down gracefully on
// SIGINT, SIGTERM or SIGQUIT.
package server
