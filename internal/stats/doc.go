// Package stats aggregates a user's submission history into summary counts.
//
// Aggregation is a pure function of its input: no clock, no I/O, no
// process state. Running it twice on the same submissions yields
// identical reports.
package stats
