package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source is one input text submitted to a run.
type Source interface {
	Name() string
	ReadAll() ([]byte, error)
}

// FileSource reads a file from disk. Its name is the file's base name.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return filepath.Base(s.Path) }

func (s FileSource) ReadAll() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}
	return data, nil
}

// BytesSource is an in-memory upload.
type BytesSource struct {
	Filename string
	Data     []byte
}

func (s BytesSource) Name() string { return s.Filename }

func (s BytesSource) ReadAll() ([]byte, error) { return s.Data, nil }

// FileSources wraps paths as Sources.
func FileSources(paths ...string) []Source {
	out := make([]Source, len(paths))
	for i, p := range paths {
		out[i] = FileSource{Path: p}
	}
	return out
}
