package model

import (
	"fmt"
	"strings"
)

// Integration is a capability tag advertised by a catalog descriptor.
type Integration string

const (
	IntegrationArrow      Integration = "arrow"
	IntegrationSpatial    Integration = "spatial"
	IntegrationParquet    Integration = "parquet"
	IntegrationGeoParquet Integration = "geoparquet"
	IntegrationJSON       Integration = "json"
)

var integrations = []Integration{
	IntegrationArrow,
	IntegrationSpatial,
	IntegrationParquet,
	IntegrationGeoParquet,
	IntegrationJSON,
}

// ParseIntegration maps a case-insensitive tag onto an Integration.
func ParseIntegration(tag string) (Integration, error) {
	norm := strings.ToLower(strings.TrimSpace(tag))
	for _, i := range integrations {
		if string(i) == norm {
			return i, nil
		}
	}
	return "", fmt.Errorf("unknown integration %q", tag)
}

// CatalogDescriptor is the read-only metadata describing a named catalog.
type CatalogDescriptor struct {
	Name             string
	Version          string
	CoordinateSystem string
	Epoch            float64
	Integrations     []Integration

	// Known is false when the descriptor is the default returned for an
	// unregistered catalog name.
	Known bool
}

// IntegrationTags returns the integrations as plain strings.
func (d CatalogDescriptor) IntegrationTags() []string {
	out := make([]string, 0, len(d.Integrations))
	for _, i := range d.Integrations {
		out = append(out, string(i))
	}
	return out
}
