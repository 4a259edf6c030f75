package skyapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/skybook/skybook-web/internal/models"
)

// envelope is the {status, data} wrapper of most backend responses.
type envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// decodeCollection accepts a bare array, {key: [...]} or {data: {key: [...]}}.
// Anything else decodes to an empty list.
func decodeCollection[T any](raw json.RawMessage, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || isNullJSON(trimmed) {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		return items, nil
	}

	if trimmed[0] != '{' {
		return []T{}, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if inner, ok := top[key]; ok {
		return decodeCollection[T](inner, key)
	}
	if inner, ok := top["data"]; ok {
		return decodeCollection[T](inner, key)
	}
	return []T{}, nil
}

// decodeDocument extracts {data: {key: {...}}} (or {key: {...}}).
// It returns nil when the document is absent.
func decodeDocument[T any](raw json.RawMessage, key string) (*T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}

	doc, ok := top[key]
	if !ok {
		data, hasData := top["data"]
		if !hasData {
			return nil, nil
		}
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, nil //nolint:nilerr // data is not an object, so there is no document
		}
		if doc, ok = inner[key]; !ok {
			return nil, nil
		}
	}
	if isNullJSON(doc) {
		return nil, nil
	}

	var out T
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &out, nil
}

// decodeStats returns the data object of a statistics response.
func decodeStats(raw json.RawMessage) (models.Stats, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return models.Stats{}, nil
	}
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	stats := models.Stats{}
	source := env.Data
	if len(source) == 0 {
		source = raw
	}
	if err := json.Unmarshal(source, &stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return stats, nil
}

func isNullJSON(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
