// Package normalize converts version-specific raw transaction records into
// the canonical model. Each API generation gets one Source; all of them
// produce the same schema, so everything downstream of this package is
// version-agnostic.
package normalize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/starling-tools/starling-export/internal/model"
	"github.com/starling-tools/starling-export/internal/starling"
)

// Source fetches raw transactions for one API generation and normalizes
// them. Results are newest first, as the provider returns them.
type Source interface {
	Transactions(ctx context.Context, r model.DateRange) ([]model.Transaction, error)
	Version() string
}

// Registry holds named sources.
type Registry struct {
	sources map[string]Source
}

// NewRegistry creates an empty source registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register adds a source. Panics on duplicate version.
func (r *Registry) Register(s Source) {
	key := strings.ToLower(s.Version())
	if _, ok := r.sources[key]; ok {
		panic("duplicate source version: " + key)
	}
	r.sources[key] = s
}

// Get returns the source for version, or nil.
func (r *Registry) Get(version string) Source {
	return r.sources[strings.ToLower(version)]
}

// Versions returns the registered version names.
func (r *Registry) Versions() []string {
	versions := make([]string, 0, len(r.sources))
	for v := range r.sources {
		versions = append(versions, v)
	}
	return versions
}

// DefaultRegistry returns a registry with a source per API generation,
// all backed by the same client.
func DefaultRegistry(client *starling.Client) *Registry {
	r := NewRegistry()
	r.Register(&V1Source{client: client})
	r.Register(&V2Source{client: client})
	r.Register(&FeedSource{client: client})
	return r
}

// timeLayouts are the provider timestamp shapes, tried in order. The API is
// inconsistent about fractional seconds and sometimes returns bare dates.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

// parseTime parses a provider timestamp, tolerating both date-only and full
// date-time strings.
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// parseStatus maps a provider status onto the canonical enum. Unknown or
// missing statuses become Other, never an error.
func parseStatus(s string) model.Status {
	switch s {
	case "SETTLED":
		return model.StatusSettled
	case "PENDING":
		return model.StatusPending
	}
	return model.StatusOther
}

// directionFromAmount derives the direction for generations that only
// encode a signed amount.
func directionFromAmount(minorUnits int64) model.Direction {
	if minorUnits < 0 {
		return model.DirectionOut
	}
	return model.DirectionIn
}
