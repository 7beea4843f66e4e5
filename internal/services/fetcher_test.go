package services

import (
	"encoding/json"
	"testing"

	"github.com/codyseavey/tcg-roi/internal/catalog"
)

// fetcherFunc adapts a function to the catalog.Fetcher interface for
// tests.
type fetcherFunc func(path string, params map[string]string) (*catalog.Envelope, error)

func (f fetcherFunc) Fetch(path string, params map[string]string) (*catalog.Envelope, error) {
	return f(path, params)
}

// envelope marshals data into a catalog envelope with the given paging.
func envelope(t *testing.T, data any, current, total int) *catalog.Envelope {
	t.Helper()

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal envelope data: %v", err)
	}
	return &catalog.Envelope{
		Data:   raw,
		Paging: catalog.Paging{Current: current, Total: total},
	}
}
