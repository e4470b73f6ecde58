package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"flightops360/hangar/internal/apperr"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/rules"
	"flightops360/hangar/internal/store"
)

// isoLayout renders timestamps the way browsers print them.
const isoLayout = "2006-01-02T15:04:05.000Z"

func isoTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

type document interface {
	DocumentID() string
	SetDocumentID(id string)
	SetTimestamps(createdAt, updatedAt string)
}

type documentPtr[T any] interface {
	*T
	document
}

// DeleteResult is returned by every delete operation.
type DeleteResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Collection is the typed CRUD flow over one store collection. Entities are
// converted to and from documents through their JSON form. Every declared
// field is written on save, empty values included, so clearing a field
// clears it in the store; keys the entity does not declare are kept by the
// merge.
type Collection[T any, P documentPtr[T]] struct {
	store    store.Store
	name     string
	resource string
}

func NewCollection[T any, P documentPtr[T]](s store.Store, name, resource string) *Collection[T, P] {
	return &Collection[T, P]{store: s, name: name, resource: resource}
}

// Name is the store collection name.
func (c *Collection[T, P]) Name() string { return c.name }

func (c *Collection[T, P]) ready() error {
	if c.store == nil {
		return &apperr.ConfigurationError{Component: "document store"}
	}
	return nil
}

func (c *Collection[T, P]) fail(op, id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return &apperr.NotFoundError{Resource: c.resource, ID: id}
	}
	logging.Error("store operation failed", "operation", op, "collection", c.name, "id", id, "error", err)
	return &apperr.StoreError{Op: op, Resource: c.resource, ID: id, Err: err}
}

// Get returns a NotFoundError when id does not exist.
func (c *Collection[T, P]) Get(ctx context.Context, id string) (*T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, apperr.Invalid("id", "is required")
	}
	rec, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return nil, c.fail("fetch", id, err)
	}
	return c.decode(rec)
}

// Find is Get that reports absence as nil instead of an error.
func (c *Collection[T, P]) Find(ctx context.Context, id string) (*T, error) {
	v, err := c.Get(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	return v, err
}

// List returns every matching document, newest first.
func (c *Collection[T, P]) List(ctx context.Context, filters ...store.Filter) ([]T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	recs, err := c.store.List(ctx, c.name, filters...)
	if err != nil {
		return nil, c.fail("list", "", err)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v, err := c.decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// Save merge-writes v, generating an id when it has none, and returns the
// stored document.
func (c *Collection[T, P]) Save(ctx context.Context, v P) (*T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	id := v.DocumentID()
	if id == "" {
		id = uuid.NewString()
	}
	data, err := encode(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", c.resource, err)
	}
	rec, err := c.store.Save(ctx, c.name, id, data)
	if err != nil {
		return nil, c.fail("save", id, err)
	}
	return c.decode(rec)
}

// Delete removes id together with the cascade refs in one batch.
func (c *Collection[T, P]) Delete(ctx context.Context, id string, cascade ...store.Ref) (*DeleteResult, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, apperr.Invalid("id", "is required")
	}
	if err := c.store.Delete(ctx, store.Ref{Collection: c.name, ID: id}, cascade...); err != nil {
		return nil, c.fail("delete", id, err)
	}
	return &DeleteResult{Success: true, ID: id}, nil
}

func (c *Collection[T, P]) Count(ctx context.Context) (int64, error) {
	if err := c.ready(); err != nil {
		return 0, err
	}
	n, err := c.store.Count(ctx, c.name)
	if err != nil {
		return 0, c.fail("count", "", err)
	}
	return n, nil
}

// Ref addresses id in this collection, for use as a cascade target.
func (c *Collection[T, P]) Ref(id string) store.Ref {
	return store.Ref{Collection: c.name, ID: id}
}

func encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return store.StripReserved(data), nil
}

func (c *Collection[T, P]) decode(rec *store.Record) (*T, error) {
	raw, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s %q: %w", c.resource, rec.ID, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to decode %s %q: %w", c.resource, rec.ID, err)
	}
	p := P(&v)
	p.SetDocumentID(rec.ID)
	p.SetTimestamps(isoTime(rec.CreatedAt), isoTime(rec.UpdatedAt))
	return &v, nil
}

// sortByDate orders items by the date key returns, ascending or descending.
// Items with a missing or unparseable date go last either way.
func sortByDate[T any](items []T, key func(*T) string, ascending bool) {
	type keyed struct {
		t  time.Time
		ok bool
	}
	keys := make([]keyed, len(items))
	for i := range items {
		if t, err := rules.ParseTime(key(&items[i])); err == nil {
			keys[i] = keyed{t: t, ok: true}
		}
	}
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.ok != kb.ok {
			return ka.ok
		}
		if ascending {
			return ka.t.Before(kb.t)
		}
		return ka.t.After(kb.t)
	})
	sorted := make([]T, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}
