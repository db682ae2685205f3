// Package writer persists crawl results: the three JSON artifacts every
// run produces, and an optional Postgres archive of runs.
package writer
