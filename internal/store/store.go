// Package store is the document-store abstraction every service writes
// through. Collections hold flat or shallowly nested JSON documents keyed by a
// string id; createdAt and updatedAt are owned by the store.
package store

import (
	"context"
	"errors"
	"reflect"
	"time"
)

// ErrNotFound is returned by Get and Delete when the target document is absent.
var ErrNotFound = errors.New("document not found")

// Reserved field names managed by the store. They are stripped from payloads.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Record is one stored document.
type Record struct {
	ID        string
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter is an equality predicate on a top-level field.
type Filter struct {
	Field string
	Value any
}

// Eq builds a Filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

// Ref addresses one document.
type Ref struct {
	Collection string
	ID         string
}

// Store is implemented by every backend.
type Store interface {
	// Get returns ErrNotFound when the document does not exist.
	Get(ctx context.Context, collection, id string) (*Record, error)

	// List returns every document of a collection matching all filters, in
	// no particular order.
	List(ctx context.Context, collection string, filters ...Filter) ([]*Record, error)

	// Save merges data into the document atomically: top-level fields in data
	// overwrite, other stored fields are kept. createdAt is set only when the
	// document is new; updatedAt is refreshed and never moves backwards.
	Save(ctx context.Context, collection, id string, data map[string]any) (*Record, error)

	// Delete removes target and every cascade ref in one batch. It returns
	// ErrNotFound, deleting nothing, when target does not exist. Missing
	// cascade refs are ignored.
	Delete(ctx context.Context, target Ref, cascade ...Ref) error

	Count(ctx context.Context, collection string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// Now is the store clock. Timestamps are kept at millisecond precision so that
// every backend round-trips them exactly.
var Now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// StripReserved removes store-managed fields from a payload.
func StripReserved(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		switch k {
		case FieldID, FieldCreatedAt, FieldUpdatedAt:
			continue
		}
		out[k] = v
	}
	return out
}

// merge applies a top-level field merge of patch onto base.
func merge(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// later returns the later of two instants.
func later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// Matches reports whether data satisfies every filter.
func Matches(data map[string]any, filters []Filter) bool {
	for _, f := range filters {
		v, ok := data[f.Field]
		if !ok || !reflect.DeepEqual(normalizeScalar(v), normalizeScalar(f.Value)) {
			return false
		}
	}
	return true
}

// normalizeScalar maps numeric kinds onto float64, the type JSON decoding
// produces, so filters on numbers compare by value.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	}
	return v
}
