// Package launch runs roll sessions off the interactive loop, one at a
// time. It owns the shared state the dashboard reads: the busy flag, the
// last summary, and the bounded event log.
package launch
