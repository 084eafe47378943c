package query

import (
	"strings"
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// AllValue is the select-box sentinel that disables an equality filter.
const AllValue = "all"

// Predicate decides whether a record is kept.
type Predicate[T any] func(T) bool

// Filter keeps the records that satisfy every predicate, in their original order.
// Nil predicates are ignored, so Filter(records) returns a copy of records.
func Filter[T any](records []T, predicates ...Predicate[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if matchesAll(r, predicates) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many records satisfy every predicate.
func Count[T any](records []T, predicates ...Predicate[T]) int {
	n := 0
	for _, r := range records {
		if matchesAll(r, predicates) {
			n++
		}
	}
	return n
}

func matchesAll[T any](r T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if p != nil && !p(r) {
			return false
		}
	}
	return true
}

// IsInactive reports whether a filter value means "no filter".
func IsInactive(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.EqualFold(v, AllValue)
}

// FieldEquals matches records whose field equals value exactly.
// It is inactive when value is empty or "all".
func FieldEquals[T any](value string, field func(T) string) Predicate[T] {
	if IsInactive(value) {
		return nil
	}
	return func(r T) bool {
		return field(r) == value
	}
}

// DateRange is an optional inclusive calendar range. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether neither bound is set.
func (d DateRange) IsZero() bool {
	return d.From.IsZero() && d.To.IsZero()
}

// Contains reports whether t falls inside the range, comparing calendar days only.
func (d DateRange) Contains(t time.Time) bool {
	day := domain.DateOf(t)
	if !d.From.IsZero() && day.Before(domain.DateOf(d.From)) {
		return false
	}
	if !d.To.IsZero() && day.After(domain.DateOf(d.To)) {
		return false
	}
	return true
}

// DateInRange matches records whose date falls inside the range.
// It is inactive when neither bound is set.
func DateInRange[T any](r DateRange, date func(T) time.Time) Predicate[T] {
	if r.IsZero() {
		return nil
	}
	return func(rec T) bool {
		return r.Contains(date(rec))
	}
}

// TextSearch matches records where the case-folded query is a substring of any field.
// It is inactive when the query is empty.
func TextSearch[T any](q string, fields func(T) []string) Predicate[T] {
	if q == "" {
		return nil
	}
	needle := strings.ToLower(q)
	return func(r T) bool {
		for _, f := range fields(r) {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}
}
