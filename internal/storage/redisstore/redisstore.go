// Package redisstore implements storage.Store on Redis.
//
// Each Sol is one JSON document under "<prefix>:sol:<id>"; a sorted set
// "<prefix>:sols" indexes ids by creation time so listings are stable.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mmynk/soltracker/internal/config"
	"github.com/mmynk/soltracker/internal/models"
	"github.com/mmynk/soltracker/internal/storage"
)

var _ storage.Store = (*Store)(nil)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Del(context.Context, ...string) *redis.IntCmd
	ZAddNX(context.Context, string, ...redis.Z) *redis.IntCmd
	ZRange(context.Context, string, int64, int64) *redis.StringSliceCmd
	ZRem(context.Context, string, ...any) *redis.IntCmd
}

// Store keeps Sols in Redis.
type Store struct {
	store  cmdable
	raw    *redis.Client
	prefix string
	now    func() time.Time
}

// New connects to Redis and verifies connectivity.
func New(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{store: raw, raw: raw, prefix: cfg.KeyPrefix, now: time.Now}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// ListSols returns all Sols in creation order. Index entries whose document
// has disappeared are skipped.
func (s *Store) ListSols(ctx context.Context) ([]*models.Sol, error) {
	ids, err := s.store.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sol ids: %w", err)
	}
	sols := make([]*models.Sol, 0, len(ids))
	for _, id := range ids {
		sol, err := s.GetSol(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		sols = append(sols, sol)
	}
	return sols, nil
}

// GetSol loads one Sol.
func (s *Store) GetSol(ctx context.Context, id string) (*models.Sol, error) {
	doc, err := s.store.Get(ctx, s.solKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sol: %w", err)
	}
	var sol models.Sol
	if err := json.Unmarshal([]byte(doc), &sol); err != nil {
		return nil, fmt.Errorf("failed to decode sol %s: %w", id, err)
	}
	return &sol, nil
}

// SaveSol writes the document, then indexes it.
func (s *Store) SaveSol(ctx context.Context, sol *models.Sol) error {
	doc, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("failed to encode sol: %w", err)
	}
	if err := s.store.Set(ctx, s.solKey(sol.ID), string(doc), 0).Err(); err != nil {
		return fmt.Errorf("failed to write sol: %w", err)
	}
	member := redis.Z{Score: float64(s.now().UnixNano()), Member: sol.ID}
	if err := s.store.ZAddNX(ctx, s.indexKey(), member).Err(); err != nil {
		return fmt.Errorf("failed to index sol: %w", err)
	}
	return nil
}

// DeleteSol removes the document and its index entry.
func (s *Store) DeleteSol(ctx context.Context, id string) error {
	n, err := s.store.Del(ctx, s.solKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete sol: %w", err)
	}
	if err := s.store.ZRem(ctx, s.indexKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to unindex sol: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.store.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *Store) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}

func (s *Store) solKey(id string) string {
	return s.buildKey("sol", id)
}

func (s *Store) indexKey() string {
	return s.buildKey("sols")
}

func (s *Store) buildKey(parts ...string) string {
	if s.prefix != "" {
		parts = append([]string{s.prefix}, parts...)
	}
	return strings.Join(parts, ":")
}
