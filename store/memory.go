package store

import (
	"sort"
	"sync"

	"github.com/gravitas-015/hexcore/hex"
	"github.com/gravitas-015/hexcore/shape"
)

// table is a mutex-guarded map shared by the in-memory stores.
type table[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func (t *table[K, V]) get(k K) (V, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.m[k]
	if !ok {
		var zero V
		return zero, ErrAbsentEntry
	}
	return v, nil
}

func (t *table[K, V]) set(k K, v V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.m == nil {
		t.m = make(map[K]V)
	}
	t.m[k] = v
}

func (t *table[K, V]) remove(k K) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.m, k)
}

func (t *table[K, V]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}

func (t *table[K, V]) keys() []K {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := make([]K, 0, len(t.m))
	for k := range t.m {
		res = append(res, k)
	}
	return res
}

// MapStore keeps cell values in a hash map. The zero value is ready to use.
type MapStore[V any] struct {
	t table[hex.Axial, V]
}

func NewMapStore[V any]() *MapStore[V] { return &MapStore[V]{} }

func (s *MapStore[V]) Get(c hex.Axial) (V, error) { return s.t.get(c) }
func (s *MapStore[V]) Set(c hex.Axial, v V) error { s.t.set(c, v); return nil }
func (s *MapStore[V]) Remove(c hex.Axial) error { s.t.remove(c); return nil }
func (s *MapStore[V]) Len() int { return s.t.len() }

// Shape returns the occupied cells.
func (s *MapStore[V]) Shape() *shape.Shape { return shape.New(s.t.keys()...) }

// EdgeMap keeps edge values in a hash map.
type EdgeMap[V any] struct {
	t table[hex.Edge, V]
}

func NewEdgeMap[V any]() *EdgeMap[V] { return &EdgeMap[V]{} }

func (s *EdgeMap[V]) GetEdge(e hex.Edge) (V, error) { return s.t.get(e.Canonical()) }
func (s *EdgeMap[V]) SetEdge(e hex.Edge, v V) error { s.t.set(e.Canonical(), v); return nil }
func (s *EdgeMap[V]) RemoveEdge(e hex.Edge) error { s.t.remove(e.Canonical()); return nil }
func (s *EdgeMap[V]) Len() int { return s.t.len() }

// Edges returns the occupied edges ordered by hex, then direction.
func (s *EdgeMap[V]) Edges() []hex.Edge {
	res := s.t.keys()
	sort.Slice(res, func(i, j int) bool {
		if res[i].Hex != res[j].Hex {
			return res[i].Hex.Less(res[j].Hex)
		}
		return res[i].Dir < res[j].Dir
	})
	return res
}

// VertexMap keeps vertex values in a hash map.
type VertexMap[V any] struct {
	t table[hex.Vertex, V]
}

func NewVertexMap[V any]() *VertexMap[V] { return &VertexMap[V]{} }

func (s *VertexMap[V]) GetVertex(v hex.Vertex) (V, error) {
	k, err := vertexKey(v)
	if err != nil {
		var zero V
		return zero, err
	}
	return s.t.get(k)
}

func (s *VertexMap[V]) SetVertex(v hex.Vertex, val V) error {
	k, err := vertexKey(v)
	if err != nil {
		return err
	}
	s.t.set(k, val)
	return nil
}

func (s *VertexMap[V]) RemoveVertex(v hex.Vertex) error {
	k, err := vertexKey(v)
	if err != nil {
		return err
	}
	s.t.remove(k)
	return nil
}

func (s *VertexMap[V]) Len() int { return s.t.len() }

// Vertices returns the occupied vertices ordered by hex, then corner.
func (s *VertexMap[V]) Vertices() []hex.Vertex {
	res := s.t.keys()
	sort.Slice(res, func(i, j int) bool {
		if res[i].Hex != res[j].Hex {
			return res[i].Hex.Less(res[j].Hex)
		}
		return res[i].Corner < res[j].Corner
	})
	return res
}

var (
	_ Cells[int]    = (*MapStore[int])(nil)
	_ Edges[int]    = (*EdgeMap[int])(nil)
	_ Vertices[int] = (*VertexMap[int])(nil)
)
