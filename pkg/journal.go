// Package pkg provides generic utilities for fixturegen.
package pkg

import (
	"encoding/gob"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Journal is a generic append-only log of items of type T, gob-encoded to a
// single file. A build appends one record per commit so an interrupted run
// leaves an inspectable trail on disk.
type Journal[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(f func(index uint64, item T) error) error
	Close() error
}

type journalImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// Append implements Journal.
func (j *journalImpl[T]) Append(item T) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.encoder.Encode(item); err != nil {
		slog.Error("failed to encode journal item", "path", j.path, "index", j.length, "error", err)
		return fmt.Errorf("failed to encode journal item: %w", err)
	}

	j.length++
	slog.Debug("appended journal item", "path", j.path, "index", j.length-1)

	return nil
}

// Close implements Journal.
func (j *journalImpl[T]) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file != nil {
		if err := j.file.Close(); err != nil {
			slog.Error("failed to close journal", "path", j.path, "error", err)
			return err
		}

		slog.Debug("closed journal", "path", j.path, "length", j.length)
	}

	return nil
}

// Len implements Journal.
func (j *journalImpl[T]) Len() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.length
}

// Path implements Journal.
func (j *journalImpl[T]) Path() string {
	return j.path
}

// Range implements Journal.
func (j *journalImpl[T]) Range(fn func(index uint64, item T) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	file, err := os.Open(j.path)
	if err != nil {
		slog.Error("failed to open journal for range", "path", j.path, "error", err)
		return fmt.Errorf("failed to open journal: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close journal", "path", j.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	var item T

	for i := uint64(0); ; i++ {
		if err := decoder.Decode(&item); err != nil {
			if err == io.EOF {
				break
			}

			slog.Error("failed to decode journal item", "path", j.path, "index", i, "error", err)

			return fmt.Errorf("failed to decode journal item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			slog.Warn("journal range callback error", "path", j.path, "index", i, "error", err)
			return err
		}
	}

	slog.Debug("journal range completed", "path", j.path)

	return nil
}

// OpenJournal creates the journal file at path, truncating any previous run.
// A gob stream only tolerates a single encoder, so each run starts fresh.
func OpenJournal[T any](path string) (Journal[T], error) {
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		slog.Error("failed to open journal file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}

	slog.Debug("opened journal", "path", path)

	return &journalImpl[T]{
		path:    path,
		file:    file,
		encoder: gob.NewEncoder(file),
		length:  0,
	}, nil
}
