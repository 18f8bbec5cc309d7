// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from this configuration:
// the listen port, the API key protecting every route and the TTL of the
// canonical pool cache shared by the HTTP features.
package server
