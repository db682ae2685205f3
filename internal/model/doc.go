// Package model defines the domain types shared across the crawler.
//
// Conventions:
//   - Timestamps: int64 seconds since Unix epoch (as reported by Codeforces)
//   - Rating: 0 means the platform has not assigned a rating to the problem
package model
