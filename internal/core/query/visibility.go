// Package query holds the read-side building blocks shared by every record
// type: role-scoped visibility, composable predicates and aggregation.
package query

import (
	"slices"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// Owned is implemented by every record that belongs to exactly one user.
type Owned interface {
	OwnerID() string
}

// Visible returns the records the viewer may see. Admins see everything,
// everyone else sees only their own records. Order is preserved and the
// input slice is never modified.
func Visible[T Owned](records []T, viewer domain.Identity) []T {
	if viewer.IsAdmin() {
		return slices.Clone(records)
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.OwnerID() == viewer.ID {
			out = append(out, r)
		}
	}
	return out
}

// CanView reports whether the viewer may see a single record.
func CanView[T Owned](record T, viewer domain.Identity) bool {
	return viewer.IsAdmin() || record.OwnerID() == viewer.ID
}
