package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore maps collections onto Firestore collections one to one.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recordFromSnapshot(snap), nil
}

func (s *FirestoreStore) List(ctx context.Context, collection string, filters ...Filter) ([]*Record, error) {
	q := s.client.Collection(collection).Query
	for _, f := range filters {
		q = q.Where(f.Field, "==", f.Value)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*Record
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, recordFromSnapshot(snap))
	}
	return out, nil
}

// Save runs the existence check and the merge write in one transaction so
// concurrent first writes cannot both claim createdAt.
func (s *FirestoreStore) Save(ctx context.Context, collection, id string, data map[string]any) (*Record, error) {
	ref := s.client.Collection(collection).Doc(id)
	patch := StripReserved(data)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := Now()
		createdAt, updatedAt := now, now

		snap, err := tx.Get(ref)
		switch {
		case err == nil && snap.Exists():
			prior := snap.Data()
			if t, ok := prior[FieldCreatedAt].(time.Time); ok {
				createdAt = t.UTC()
			}
			if t, ok := prior[FieldUpdatedAt].(time.Time); ok {
				updatedAt = later(now, t.UTC())
			}
		case err != nil && status.Code(err) != codes.NotFound:
			return err
		}

		payload := merge(patch, map[string]any{
			FieldCreatedAt: createdAt,
			FieldUpdatedAt: updatedAt,
		})
		return tx.Set(ref, payload, firestore.Merge(topLevelPaths(payload)...))
	})
	if err != nil {
		return nil, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("re-read after save: %w", err)
	}
	return recordFromSnapshot(snap), nil
}

func (s *FirestoreStore) Delete(ctx context.Context, target Ref, cascade ...Ref) error {
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		targetRef := s.client.Collection(target.Collection).Doc(target.ID)
		snap, err := tx.Get(targetRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}
		if !snap.Exists() {
			return ErrNotFound
		}

		if err := tx.Delete(targetRef); err != nil {
			return err
		}
		for _, ref := range cascade {
			if err := tx.Delete(s.client.Collection(ref.Collection).Doc(ref.ID)); err != nil {
				return fmt.Errorf("cascade delete %s/%s: %w", ref.Collection, ref.ID, err)
			}
		}
		return nil
	})
}

func (s *FirestoreStore) Count(ctx context.Context, collection string) (int64, error) {
	res, err := s.client.Collection(collection).NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, err
	}

	switch v := res["all"].(type) {
	case *firestorepb.Value:
		return v.GetIntegerValue(), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("unexpected count result type %T", v)
	}
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if errors.Is(err, iterator.Done) {
		return nil
	}
	return err
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// topLevelPaths lists one field path per key of payload. Merging on these
// replaces nested maps whole, matching the top-level merge of the other
// backends; MergeAll would merge them key by key instead.
func topLevelPaths(payload map[string]any) []firestore.FieldPath {
	paths := make([]firestore.FieldPath, 0, len(payload))
	for k := range payload {
		paths = append(paths, firestore.FieldPath{k})
	}
	return paths
}

func recordFromSnapshot(snap *firestore.DocumentSnapshot) *Record {
	data := snap.Data()
	rec := &Record{
		ID:        snap.Ref.ID,
		CreatedAt: snap.CreateTime.UTC(),
		UpdatedAt: snap.UpdateTime.UTC(),
	}
	if t, ok := data[FieldCreatedAt].(time.Time); ok {
		rec.CreatedAt = t.UTC()
	}
	if t, ok := data[FieldUpdatedAt].(time.Time); ok {
		rec.UpdatedAt = t.UTC()
	}
	rec.Data = StripReserved(data)
	return rec
}
