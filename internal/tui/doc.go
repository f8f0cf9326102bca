// Package tui renders the interactive dashboard: plan editing, session
// launching, the event log, and the last session summary. All blocking work
// happens in the launcher's worker; the dashboard only reads shared state
// on a refresh tick.
package tui
