// Package source provides byte-source handles for audio files.
//
// A Source is an opaque handle owned by whoever holds the track record.
// Release must be called once the record is destroyed; after that Open fails.
package source

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sync"
)

// ErrReleased is returned by Open after Release has been called.
var ErrReleased = errors.New("source released")

// Source is a readable handle to audio bytes.
type Source interface {
	// Open returns a fresh reader positioned at the start of the data.
	Open() (io.ReadSeekCloser, error)
	// Location identifies the source (a file path for file sources).
	Location() string
	// Size returns the byte length, or -1 if unknown.
	Size() int64
	// Release frees the handle. It is safe to call more than once.
	Release()
	// Released reports whether Release has been called.
	Released() bool
}

// File is a Source backed by a file on disk.
type File struct {
	path string
	size int64

	mu       sync.Mutex
	released bool
}

// NewFile creates a file source. The file is not opened until Open.
func NewFile(path string, size int64) *File {
	return &File{path: path, size: size}
}

func (f *File) Open() (io.ReadSeekCloser, error) {
	f.mu.Lock()
	released := f.released
	f.mu.Unlock()
	if released {
		return nil, ErrReleased
	}
	return os.Open(f.path)
}

func (f *File) Location() string { return f.path }

func (f *File) Size() int64 { return f.size }

func (f *File) Release() {
	f.mu.Lock()
	f.released = true
	f.mu.Unlock()
}

func (f *File) Released() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.released
}

// Memory is a Source holding its bytes in memory.
type Memory struct {
	name string

	mu   sync.Mutex
	data []byte
	gone bool
}

// NewMemory creates an in-memory source. The slice is not copied.
func NewMemory(name string, data []byte) *Memory {
	return &Memory{name: name, data: data}
}

func (m *Memory) Open() (io.ReadSeekCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gone {
		return nil, ErrReleased
	}
	return nopCloser{bytes.NewReader(m.data)}, nil
}

func (m *Memory) Location() string { return m.name }

func (m *Memory) Size() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gone {
		return -1
	}
	return int64(len(m.data))
}

// Release drops the buffer.
func (m *Memory) Release() {
	m.mu.Lock()
	m.data = nil
	m.gone = true
	m.mu.Unlock()
}

func (m *Memory) Released() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gone
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
