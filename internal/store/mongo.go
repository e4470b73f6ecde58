package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore maps collections onto MongoDB collections; the document id is _id.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, db *mongo.Database) *MongoStore {
	return &MongoStore{client: client, db: db}
}

func (s *MongoStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recordFromBSON(doc), nil
}

func (s *MongoStore) List(ctx context.Context, collection string, filters ...Filter) ([]*Record, error) {
	filter := bson.M{}
	for _, f := range filters {
		filter[f.Field] = f.Value
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*Record, 0, len(docs))
	for _, doc := range docs {
		out = append(out, recordFromBSON(doc))
	}
	return out, nil
}

// Save is a single upsert: $setOnInsert claims createdAt only for a new
// document and $max keeps updatedAt monotonic.
func (s *MongoStore) Save(ctx context.Context, collection, id string, data map[string]any) (*Record, error) {
	now := Now()
	patch := StripReserved(data)

	update := bson.M{
		"$setOnInsert": bson.M{FieldCreatedAt: now},
		"$max":         bson.M{FieldUpdatedAt: now},
	}
	if len(patch) > 0 {
		update["$set"] = patch
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc bson.M
	err := s.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).
		Decode(&doc)
	if err != nil {
		return nil, err
	}
	return recordFromBSON(doc), nil
}

// Delete is not transactional on MongoDB: multi-document transactions need a
// replica set, which standalone deployments lack.
func (s *MongoStore) Delete(ctx context.Context, target Ref, cascade ...Ref) error {
	res, err := s.db.Collection(target.Collection).DeleteOne(ctx, bson.M{"_id": target.ID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	for _, ref := range cascade {
		if _, err := s.db.Collection(ref.Collection).DeleteOne(ctx, bson.M{"_id": ref.ID}); err != nil {
			return fmt.Errorf("cascade delete %s/%s: %w", ref.Collection, ref.ID, err)
		}
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context, collection string) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, bson.M{})
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func recordFromBSON(doc bson.M) *Record {
	rec := &Record{Data: make(map[string]any, len(doc))}
	for k, v := range doc {
		switch k {
		case "_id":
			rec.ID = fmt.Sprint(v)
		case FieldCreatedAt:
			rec.CreatedAt = bsonTime(v)
		case FieldUpdatedAt:
			rec.UpdatedAt = bsonTime(v)
		case FieldID:
		default:
			rec.Data[k] = normalizeBSON(v)
		}
	}
	return rec
}

func bsonTime(v any) time.Time {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC()
	}
	return time.Time{}
}

// normalizeBSON converts driver container types into plain maps and slices.
func normalizeBSON(v any) any {
	switch t := v.(type) {
	case primitive.M:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = normalizeBSON(inner)
		}
		return out
	case primitive.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalizeBSON(e.Value)
		}
		return out
	case primitive.A:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = normalizeBSON(inner)
		}
		return out
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339Nano)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	}
	return v
}
