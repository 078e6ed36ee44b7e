// Package server holds the HTTP server configuration.
//
// The main entry point (cmd serve) handles the server startup; this package only
// defines where the listener binds. By default the server listens on port 5000 on
// all interfaces, which is where nodes expect to fetch their configuration.
package server
