package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BuzzLyutic/trello-export/internal/model"
)

var (
	ErrMalformedInput = errors.New("malformed input")
)

var requiredKeys = []string{"cards", "labels", "lists", "checklists"}

// Load читает весь документ и разбирает его. Частичного результата не бывает.
func Load(r io.Reader) (model.Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Board{}, fmt.Errorf("read document: %w", err)
	}
	return Parse(data)
}

// LoadFile загружает документ с диска (дефолтный образец).
func LoadFile(path string) (model.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Board{}, fmt.Errorf("open %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (model.Board, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return model.Board{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if top == nil {
		return model.Board{}, fmt.Errorf("%w: document is not an object", ErrMalformedInput)
	}

	for _, key := range requiredKeys {
		raw, ok := top[key]
		if !ok {
			return model.Board{}, fmt.Errorf("%w: missing key %q", ErrMalformedInput, key)
		}
		if !isArray(raw) {
			return model.Board{}, fmt.Errorf("%w: key %q is not an array", ErrMalformedInput, key)
		}
	}

	var b model.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return model.Board{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return b, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
