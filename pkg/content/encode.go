package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalModel encodes a model as indented JSON. The encoding is stable for
// a given model, which makes it usable as cache payload and hash input.
func MarshalModel(m *Model) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode model: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalModel decodes a model previously produced by [MarshalModel].
func UnmarshalModel(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return &m, nil
}

// ReadModel decodes a model from r.
func ReadModel(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return UnmarshalModel(data)
}

// WriteModelFile writes a model to path as indented JSON.
func WriteModelFile(m *Model, path string) error {
	data, err := MarshalModel(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadModelFile reads a model from a JSON file written by [WriteModelFile].
func ReadModelFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadModel(f)
}
