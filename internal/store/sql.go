package store

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JSONB is a custom type for JSONB document bodies
type JSONB map[string]interface{}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = make(map[string]interface{})
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("JSONB: cannot scan type %T", value)
	}

	result := make(map[string]interface{})
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}

	*j = result
	return nil
}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return "{}", nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// documentRow is the GORM model for the documents table
type documentRow struct {
	Collection string    `gorm:"column:collection;primaryKey;type:varchar(100)"`
	ID         string    `gorm:"column:id;primaryKey;type:varchar(255)"`
	Data       JSONB     `gorm:"column:data;type:jsonb;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime:false;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime:false;not null"`
}

func (documentRow) TableName() string {
	return "documents"
}

func (r *documentRow) record() *Record {
	return &Record{
		ID:        r.ID,
		Data:      map[string]any(r.Data),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

var errInsertConflict = errors.New("concurrent insert of the same document")

const maxSaveAttempts = 3

// SQLStore keeps every collection in one documents table. CRUD goes through
// GORM; counts and health pings use sqlx.
type SQLStore struct {
	db  *gorm.DB
	raw *sqlx.DB
}

// NewSQLStore migrates the documents table. raw may be nil, in which case a
// sqlx handle is derived from the GORM connection pool.
func NewSQLStore(db *gorm.DB, raw *sqlx.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}

	if raw == nil {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
		}
		driverName := "postgres"
		if db.Dialector.Name() == "sqlite" {
			driverName = "sqlite3"
		}
		raw = sqlx.NewDb(sqlDB, driverName)
	}

	return &SQLStore{db: db, raw: raw}, nil
}

func (s *SQLStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	var row documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.record(), nil
}

// List filters in process: JSON path syntax differs between Postgres and
// SQLite, and collections here stay small.
func (s *SQLStore) List(ctx context.Context, collection string, filters ...Filter) ([]*Record, error) {
	var rows []documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*Record, 0, len(rows))
	for i := range rows {
		if Matches(rows[i].Data, filters) {
			out = append(out, rows[i].record())
		}
	}
	return out, nil
}

func (s *SQLStore) Save(ctx context.Context, collection, id string, data map[string]any) (*Record, error) {
	patch := StripReserved(data)

	var saved documentRow
	var err error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		saved, err = s.saveOnce(ctx, collection, id, patch)
		if !errors.Is(err, errInsertConflict) {
			break
		}
		time.Sleep(time.Duration(20*(attempt+1)) * time.Millisecond)
	}
	if err != nil {
		return nil, err
	}
	return saved.record(), nil
}

func (s *SQLStore) saveOnce(ctx context.Context, collection, id string, patch map[string]any) (documentRow, error) {
	var row documentRow

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("collection = ? AND id = ?", collection, id)
		if s.db.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		err := q.Take(&row).Error
		now := Now()

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = documentRow{
				Collection: collection,
				ID:         id,
				Data:       JSONB(patch),
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errInsertConflict
			}
			return nil
		case err != nil:
			return err
		}

		row.Data = JSONB(merge(row.Data, patch))
		row.UpdatedAt = later(now, row.UpdatedAt.UTC())
		return tx.Model(&documentRow{}).
			Where("collection = ? AND id = ?", collection, id).
			Updates(map[string]any{"data": row.Data, "updated_at": row.UpdatedAt}).Error
	})

	return row, err
}

func (s *SQLStore) Delete(ctx context.Context, target Ref, cascade ...Ref) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("collection = ? AND id = ?", target.Collection, target.ID).Delete(&documentRow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		for _, ref := range cascade {
			if err := tx.Where("collection = ? AND id = ?", ref.Collection, ref.ID).Delete(&documentRow{}).Error; err != nil {
				return fmt.Errorf("cascade delete %s/%s: %w", ref.Collection, ref.ID, err)
			}
		}
		return nil
	})
}

const countDocumentsQuery = `SELECT COUNT(*) FROM documents WHERE collection = ?`

func (s *SQLStore) Count(ctx context.Context, collection string) (int64, error) {
	var n int64
	if err := s.raw.GetContext(ctx, &n, s.raw.Rebind(countDocumentsQuery), collection); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.raw.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
	return s.raw.Close()
}
