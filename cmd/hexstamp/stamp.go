package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/hexcore"
	"github.com/gravitas-015/hexcore/hex"
	"github.com/gravitas-015/hexcore/shape"
	"github.com/gravitas-015/hexcore/store"
)

// StampFile describes a shape to build and the transforms to apply to it.
type StampFile struct {
	Stamp      shape.StampKind `yaml:"stamp"`
	Size       int             `yaml:"size"`
	Cells      []hex.Axial     `yaml:"cells"`
	Transforms shape.Pipeline  `yaml:"transforms"`
}

func loadStampFile(path string) (*StampFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stamp file: %w", err)
	}
	var sf StampFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse stamp file: %w", err)
	}
	return &sf, nil
}

// Build generates the stamp, adds the explicit cells and runs the pipeline.
func (sf *StampFile) Build() (*shape.Shape, error) {
	s := shape.New(sf.Cells...)
	if sf.Stamp != "" {
		gen, err := shape.Stamp(sf.Stamp, sf.Size)
		if err != nil {
			return nil, err
		}
		s = s.Union(gen)
	}
	return sf.Transforms.Apply(s)
}

// cellState marks outline cells so they can be drawn differently.
func cellState(s *shape.Shape) func(hex.Axial) hexcore.CellState {
	boundary := s.Boundary()
	return func(c hex.Axial) hexcore.CellState {
		if boundary.Contains(c) {
			return hexcore.Boundary
		}
		return hexcore.Interior
	}
}

type cellReport struct {
	Q     int               `yaml:"q"`
	R     int               `yaml:"r"`
	State hexcore.CellState `yaml:"state"`
	X     float64           `yaml:"x"`
	Y     float64           `yaml:"y"`
}

type report struct {
	Fingerprint string       `yaml:"fingerprint"`
	Count       int          `yaml:"count"`
	Edges       int          `yaml:"outline_edges"`
	Corners     int          `yaml:"corners"`
	Cells       []cellReport `yaml:"cells"`
}

type backend interface {
	store.Cells[hexcore.CellState]
	store.Edges[hexcore.CellState]
	store.Vertices[hexcore.CellState]
}

// cellsOnly pairs a cell store with in-memory edge and vertex maps.
type cellsOnly struct {
	store.Cells[hexcore.CellState]
	*store.EdgeMap[hexcore.CellState]
	*store.VertexMap[hexcore.CellState]
}

// stampInto writes s into dst and reads the cells back for the report.
func stampInto(dst backend, s *shape.Shape, layout hex.Layout) (*report, error) {
	if err := store.Stamp[hexcore.CellState](dst, s, cellState(s)); err != nil {
		return nil, err
	}
	edges, err := store.Outline[hexcore.CellState](dst, s, hexcore.Boundary)
	if err != nil {
		return nil, err
	}
	corners, err := store.Corners[hexcore.CellState](dst, s, hexcore.Boundary)
	if err != nil {
		return nil, err
	}
	states, err := store.Collect[hexcore.CellState](dst, s)
	if err != nil {
		return nil, err
	}

	rep := &report{
		Fingerprint: strconv.FormatUint(s.Fingerprint(), 16),
		Count:       s.Len(),
		Edges:       edges,
		Corners:     corners,
	}
	for _, c := range s.Coords() {
		p := layout.ToPixel(c)
		rep.Cells = append(rep.Cells, cellReport{Q: c.Q, R: c.R, State: states[c], X: p.X, Y: p.Y})
	}
	return rep, nil
}

func writeReport(w io.Writer, rep *report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
