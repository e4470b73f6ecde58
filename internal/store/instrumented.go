package store

import (
	"context"
	"errors"
	"time"

	"flightops360/hangar/internal/metrics"
)

// Instrumented records operation counts and latency for a backend.
type Instrumented struct {
	next    Store
	metrics *metrics.MetricsRegistry
}

// Instrument wraps s. A nil registry returns s unchanged.
func Instrument(s Store, m *metrics.MetricsRegistry) Store {
	if m == nil {
		return s
	}
	return &Instrumented{next: s, metrics: m}
}

func (i *Instrumented) observe(op, collection string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	i.metrics.StoreOpsTotal.WithLabelValues(op, collection, result).Inc()
	i.metrics.StoreOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (i *Instrumented) Get(ctx context.Context, collection, id string) (*Record, error) {
	start := time.Now()
	rec, err := i.next.Get(ctx, collection, id)
	i.observe("get", collection, start, err)
	return rec, err
}

func (i *Instrumented) List(ctx context.Context, collection string, filters ...Filter) ([]*Record, error) {
	start := time.Now()
	recs, err := i.next.List(ctx, collection, filters...)
	i.observe("list", collection, start, err)
	return recs, err
}

func (i *Instrumented) Save(ctx context.Context, collection, id string, data map[string]any) (*Record, error) {
	start := time.Now()
	rec, err := i.next.Save(ctx, collection, id, data)
	i.observe("save", collection, start, err)
	return rec, err
}

func (i *Instrumented) Delete(ctx context.Context, target Ref, cascade ...Ref) error {
	start := time.Now()
	err := i.next.Delete(ctx, target, cascade...)
	i.observe("delete", target.Collection, start, err)
	return err
}

func (i *Instrumented) Count(ctx context.Context, collection string) (int64, error) {
	start := time.Now()
	n, err := i.next.Count(ctx, collection)
	i.observe("count", collection, start, err)
	return n, err
}

func (i *Instrumented) Ping(ctx context.Context) error {
	return i.next.Ping(ctx)
}

func (i *Instrumented) Close() error {
	return i.next.Close()
}
