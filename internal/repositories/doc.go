// Package repositories provides the persistence layer for cached archive
// listings.
//
// The backend remains the source of truth; rows here are only the last
// successful fetch per category, plus a stale flag that marks a listing for
// refetch after a mutation. A stale listing stays readable so the page keeps
// showing the last known-good server state until the next fetch completes.
package repositories
