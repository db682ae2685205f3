// Package database provides the Postgres connection for the run archive.
package database
