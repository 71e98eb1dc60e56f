package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gravitas-015/hexcore"
	"github.com/gravitas-015/hexcore/internal/config"
	"github.com/gravitas-015/hexcore/internal/logging"
	"github.com/gravitas-015/hexcore/store"
	"github.com/gravitas-015/hexcore/store/redisstore"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logging.Error("hexstamp failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/hexstamp.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	lvl, _ := logging.ParseLevel(cfg.Log.Level)
	logging.SetLevel(lvl)
	logging.Info("configuration loaded", "path", configPath, "backend", cfg.Store.Backend)

	if len(args) != 1 {
		return fmt.Errorf("usage: hexstamp <stamp-file>")
	}
	sf, err := loadStampFile(args[0])
	if err != nil {
		return err
	}
	s, err := sf.Build()
	if err != nil {
		return fmt.Errorf("failed to build stamp: %w", err)
	}
	logging.Debug("stamp built", "cells", s.Len(), "transforms", len(sf.Transforms))

	layout, err := cfg.HexLayout()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dst, closeFn, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	rep, err := stampInto(dst, s, layout)
	if err != nil {
		return fmt.Errorf("failed to stamp cells: %w", err)
	}
	logging.Info("stamped", "cells", rep.Count, "edges", rep.Edges, "corners", rep.Corners)
	return writeReport(os.Stdout, rep)
}

func openBackend(ctx context.Context, cfg *config.Config) (backend, func(), error) {
	extras := func(cells store.Cells[hexcore.CellState]) backend {
		return cellsOnly{
			Cells:     cells,
			EdgeMap:   store.NewEdgeMap[hexcore.CellState](),
			VertexMap: store.NewVertexMap[hexcore.CellState](),
		}
	}

	switch cfg.Store.Backend {
	case config.BackendChunked:
		cs, err := store.NewChunkStore[hexcore.CellState](cfg.Store.ChunkSize)
		if err != nil {
			return nil, nil, err
		}
		return extras(cs), func() {}, nil
	case config.BackendRedis:
		rs, err := redisstore.Dial[hexcore.CellState](ctx, redisstore.Options{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
		})
		if err != nil {
			return nil, nil, err
		}
		return rs, func() {
			if err := rs.Close(); err != nil {
				logging.Warn("redis close error", "err", err)
			}
		}, nil
	}
	return extras(store.NewMapStore[hexcore.CellState]()), func() {}, nil
}
