// Package service implements the dashboard's domain store: one repository per
// entity collection, the workspace aggregate, and the refresh orchestrator
// that keeps the in-memory projections and derived metrics consistent.
//
// Every mutator follows the same shape: one full-collection read from the
// document store, the change applied in memory, one full-collection write
// back, then a projection recompute. A failed write returns the error and
// leaves the projection untouched, so callers never observe an optimistic
// state that was not persisted.
package service

import "errors"

var (
	// ErrNotFound reports that a referenced entity does not exist. Plain
	// Update/Delete calls are deliberately no-ops on absent ids; ErrNotFound
	// is reserved for operations that attach something to an entity.
	ErrNotFound = errors.New("service: not found")

	// ErrBackupCodes reports an invalid backup code set: the only valid
	// cardinalities are zero and exactly eight unique case-normalized codes.
	ErrBackupCodes = errors.New("service: backup codes must be empty or exactly 8 unique codes")
)
