package store

import (
	"fmt"
	"sync"

	"github.com/gravitas-015/hexcore/hex"
)

// DefaultChunkSize is the side length of a chunk in cells.
const DefaultChunkSize = 16

// Chunk is a Size x Size parallelogram of cells held in flat slices.
type Chunk[V any] struct {
	Pos  hex.Axial // position in the chunk grid
	Size int

	cells   []V
	present []bool
	count   int
}

func newChunk[V any](pos hex.Axial, size int) *Chunk[V] {
	return &Chunk[V]{
		Pos:     pos,
		Size:    size,
		cells:   make([]V, size*size),
		present: make([]bool, size*size),
	}
}

// Origin is the world coordinate of the chunk's local (0, 0).
func (c *Chunk[V]) Origin() hex.Axial { return c.Pos.Mul(c.Size) }

// Len returns the number of occupied cells in the chunk.
func (c *Chunk[V]) Len() int { return c.count }

// GetLocal looks up a cell by its offset from Origin. Offsets outside the
// chunk report false.
func (c *Chunk[V]) GetLocal(local hex.Axial) (V, bool) {
	if local.Q < 0 || local.Q >= c.Size || local.R < 0 || local.R >= c.Size {
		var zero V
		return zero, false
	}
	i := local.R*c.Size + local.Q
	return c.cells[i], c.present[i]
}

func (c *Chunk[V]) index(world hex.Axial) int {
	l := world.Sub(c.Origin())
	return l.R*c.Size + l.Q
}

// ChunkStore partitions the plane into parallelogram chunks allocated on
// first write and dropped once empty. Lookups touch one chunk.
type ChunkStore[V any] struct {
	mu     sync.RWMutex
	size   int
	chunks map[hex.Axial]*Chunk[V]
}

// NewChunkStore creates a store with chunks of size x size cells.
func NewChunkStore[V any](size int) (*ChunkStore[V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	return &ChunkStore[V]{size: size, chunks: make(map[hex.Axial]*Chunk[V])}, nil
}

// ChunkOf returns the chunk grid position containing c.
func (s *ChunkStore[V]) ChunkOf(c hex.Axial) hex.Axial {
	return hex.Axial{Q: floorDiv(c.Q, s.size), R: floorDiv(c.R, s.size)}
}

// GetChunk retrieves the chunk at the given grid position.
func (s *ChunkStore[V]) GetChunk(pos hex.Axial) (*Chunk[V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.chunks[pos]
	return ch, ok
}

// ChunkCount returns the number of allocated chunks.
func (s *ChunkStore[V]) ChunkCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Len returns the number of occupied cells.
func (s *ChunkStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, ch := range s.chunks {
		n += ch.count
	}
	return n
}

func (s *ChunkStore[V]) Get(c hex.Axial) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero V
	ch, ok := s.chunks[s.ChunkOf(c)]
	if !ok {
		return zero, ErrAbsentEntry
	}
	i := ch.index(c)
	if !ch.present[i] {
		return zero, ErrAbsentEntry
	}
	return ch.cells[i], nil
}

func (s *ChunkStore[V]) Set(c hex.Axial, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := s.ChunkOf(c)
	ch, ok := s.chunks[pos]
	if !ok {
		ch = newChunk[V](pos, s.size)
		s.chunks[pos] = ch
	}
	i := ch.index(c)
	if !ch.present[i] {
		ch.present[i] = true
		ch.count++
	}
	ch.cells[i] = v
	return nil
}

func (s *ChunkStore[V]) Remove(c hex.Axial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := s.ChunkOf(c)
	ch, ok := s.chunks[pos]
	if !ok {
		return nil
	}
	i := ch.index(c)
	if !ch.present[i] {
		return nil
	}
	var zero V
	ch.cells[i] = zero
	ch.present[i] = false
	ch.count--
	if ch.count == 0 {
		delete(s.chunks, pos)
	}
	return nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

var _ Cells[int] = (*ChunkStore[int])(nil)
