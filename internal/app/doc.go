// Package app loads runtime configuration and wires the transport, the
// session engine, and the launcher for the commands.
package app
