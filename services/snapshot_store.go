// services/snapshot_store.go
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"invoicegen-backend/models"
	"invoicegen-backend/utils"
)

// SnapshotStore is the key-value persistence boundary. It knows nothing
// about when it is called; controllers save opportunistically after
// every mutation. A missing key means "use the default", never an error.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key, body string) error
}

const cacheTTL = 24 * time.Hour

// DBStore keeps snapshots in Postgres with a Redis write-through cache
// in front. The cache is optional: with no Redis address configured
// every read goes straight to the database.
type DBStore struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewDBStore(db *gorm.DB, redisAddr, redisPassword string) *DBStore {
	store := &DBStore{db: db}
	if redisAddr != "" {
		store.cache = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
		})
	}
	return store
}

func (s *DBStore) Load(ctx context.Context, key string) (string, bool, error) {
	if s.cache != nil {
		val, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			return val, true, nil
		}
		if err != redis.Nil {
			utils.Logger.Warnw("snapshot cache read failed", "key", key, "error", err)
		}
	}

	var row models.Snapshot
	if err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, row.Body, cacheTTL).Err(); err != nil {
			utils.Logger.Warnw("snapshot cache backfill failed", "key", key, "error", err)
		}
	}
	return row.Body, true, nil
}

func (s *DBStore) Save(ctx context.Context, key, body string) error {
	row := models.Snapshot{Key: key, Body: body}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, body, cacheTTL).Err(); err != nil {
			utils.Logger.Warnw("snapshot cache write failed", "key", key, "error", err)
		}
	}
	return nil
}

// MemoryStore is the in-process store used by tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Load(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	body, ok := s.data[key]
	return body, ok, nil
}

func (s *MemoryStore) Save(_ context.Context, key, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = body
	return nil
}
