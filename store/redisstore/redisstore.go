// Package redisstore keeps cell, edge and vertex values in a single Redis
// hash. Values are JSON encoded.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/gravitas-015/hexcore/hex"
	"github.com/gravitas-015/hexcore/internal/logging"
	"github.com/gravitas-015/hexcore/shape"
	"github.com/gravitas-015/hexcore/store"
)

// DefaultKey is the hash used when Options.Key is empty.
const DefaultKey = "hexcore:cells"

func init() {
	redis.SetLogger(clientLogger{})
}

// clientLogger routes the Redis client's internal messages, such as pool and
// reconnect notices, into the shared logger.
type clientLogger struct{}

func (clientLogger) Printf(_ context.Context, format string, v ...interface{}) {
	logging.Printf("redis: "+format, v...)
}

type Options struct {
	Address  string
	Password string
	DB       int
	Key      string
}

// Store implements store.Cells, store.Edges and store.Vertices on one hash.
// Every call uses the context given at construction.
type Store[V any] struct {
	ctx   context.Context
	redis *redis.Client
	key   string
}

// Dial connects to Redis and verifies the connection.
func Dial[V any](ctx context.Context, opts Options) (*Store[V], error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	s := New[V](ctx, client, opts.Key)
	logging.Info("connected to redis", "addr", opts.Address, "key", s.key)
	return s, nil
}

// New wraps an existing client.
func New[V any](ctx context.Context, client *redis.Client, key string) *Store[V] {
	if key == "" {
		key = DefaultKey
	}
	return &Store[V]{ctx: ctx, redis: client, key: key}
}

// Key returns the hash holding the store's entries.
func (s *Store[V]) Key() string { return s.key }

func (s *Store[V]) Close() error { return s.redis.Close() }

func (s *Store[V]) get(field string) (V, error) {
	var v V
	raw, err := s.redis.HGet(s.ctx, s.key, field).Result()
	if errors.Is(err, redis.Nil) {
		return v, store.ErrAbsentEntry
	}
	if err != nil {
		return v, fmt.Errorf("hget %s %s: %w", s.key, field, err)
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", field, err)
	}
	return v, nil
}

func (s *Store[V]) set(field string, v V) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", field, err)
	}
	if err := s.redis.HSet(s.ctx, s.key, field, b).Err(); err != nil {
		return fmt.Errorf("hset %s %s: %w", s.key, field, err)
	}
	return nil
}

func (s *Store[V]) remove(field string) error {
	if err := s.redis.HDel(s.ctx, s.key, field).Err(); err != nil {
		return fmt.Errorf("hdel %s %s: %w", s.key, field, err)
	}
	return nil
}

func (s *Store[V]) Get(c hex.Axial) (V, error) { return s.get(cellField(c)) }
func (s *Store[V]) Set(c hex.Axial, v V) error { return s.set(cellField(c), v) }
func (s *Store[V]) Remove(c hex.Axial) error { return s.remove(cellField(c)) }

func (s *Store[V]) GetEdge(e hex.Edge) (V, error) { return s.get(edgeField(e)) }
func (s *Store[V]) SetEdge(e hex.Edge, v V) error { return s.set(edgeField(e), v) }
func (s *Store[V]) RemoveEdge(e hex.Edge) error { return s.remove(edgeField(e)) }

func (s *Store[V]) GetVertex(v hex.Vertex) (V, error) {
	if !v.Valid() {
		var zero V
		return zero, fmt.Errorf("%w: %v", store.ErrInvalidVertex, v)
	}
	return s.get(vertexField(v))
}

func (s *Store[V]) SetVertex(v hex.Vertex, val V) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %v", store.ErrInvalidVertex, v)
	}
	return s.set(vertexField(v), val)
}

func (s *Store[V]) RemoveVertex(v hex.Vertex) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %v", store.ErrInvalidVertex, v)
	}
	return s.remove(vertexField(v))
}

// Len returns the number of entries of every kind.
func (s *Store[V]) Len() (int64, error) {
	return s.redis.HLen(s.ctx, s.key).Result()
}

// Shape returns the cells that hold a value.
func (s *Store[V]) Shape() (*shape.Shape, error) {
	fields, err := s.redis.HKeys(s.ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("hkeys %s: %w", s.key, err)
	}
	out := shape.New()
	for _, f := range fields {
		if c, ok := parseCellField(f); ok {
			out.Add(c)
		}
	}
	return out, nil
}

// Clear deletes the whole hash.
func (s *Store[V]) Clear() error {
	if err := s.redis.Del(s.ctx, s.key).Err(); err != nil {
		return fmt.Errorf("del %s: %w", s.key, err)
	}
	logging.Debug("cleared redis store", "key", s.key)
	return nil
}

func cellField(c hex.Axial) string { return fmt.Sprintf("c:%d,%d", c.Q, c.R) }

func edgeField(e hex.Edge) string {
	e = e.Canonical()
	return fmt.Sprintf("e:%d,%d,%d", e.Hex.Q, e.Hex.R, int(e.Dir))
}

func vertexField(v hex.Vertex) string {
	return fmt.Sprintf("v:%d,%d,%d", v.Hex.Q, v.Hex.R, int(v.Corner))
}

func parseCellField(f string) (hex.Axial, bool) {
	rest, ok := strings.CutPrefix(f, "c:")
	if !ok {
		return hex.Axial{}, false
	}
	var c hex.Axial
	if _, err := fmt.Sscanf(rest, "%d,%d", &c.Q, &c.R); err != nil {
		return hex.Axial{}, false
	}
	return c, true
}

var (
	_ store.Cells[int]    = (*Store[int])(nil)
	_ store.Edges[int]    = (*Store[int])(nil)
	_ store.Vertices[int] = (*Store[int])(nil)
)
