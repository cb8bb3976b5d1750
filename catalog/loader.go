package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signalsfoundry/astro-kernel/model"
)

type descriptorFileJSON struct {
	Catalogs []descriptorJSON `json:"catalogs"`
}

type descriptorJSON struct {
	Name             string   `json:"name"`
	Version          string   `json:"version"`
	CoordinateSystem string   `json:"coordinate_system"`
	Epoch            *float64 `json:"epoch"` // defaults to J2000.0
	Integrations     []string `json:"integrations"`
}

// LoadJSON decodes a descriptor file of the form
//
//	{"catalogs": [{"name": "...", "coordinate_system": "ICRS", ...}]}
//
// It fails on malformed JSON and on unknown integration tags.
func LoadJSON(r io.Reader) ([]model.CatalogDescriptor, error) {
	var payload descriptorFileJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadJSON: decode failed: %w", err)
	}

	out := make([]model.CatalogDescriptor, 0, len(payload.Catalogs))
	for i, c := range payload.Catalogs {
		d, err := c.descriptor()
		if err != nil {
			return nil, fmt.Errorf("LoadJSON: catalogs[%d]: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// LoadJSONFile opens path and decodes it with LoadJSON.
func LoadJSONFile(path string) ([]model.CatalogDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return LoadJSON(f)
}

func (c descriptorJSON) descriptor() (model.CatalogDescriptor, error) {
	d := model.CatalogDescriptor{
		Name:             c.Name,
		Version:          c.Version,
		CoordinateSystem: c.CoordinateSystem,
		Epoch:            model.EpochJ2000,
	}
	if c.Epoch != nil {
		d.Epoch = *c.Epoch
	}
	tags, err := parseIntegrations(c.Integrations)
	if err != nil {
		return model.CatalogDescriptor{}, err
	}
	d.Integrations = tags
	return d, validate(d)
}

func parseIntegrations(tags []string) ([]model.Integration, error) {
	out := make([]model.Integration, 0, len(tags))
	for _, tag := range tags {
		i, err := model.ParseIntegration(tag)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
		}
		out = append(out, i)
	}
	return out, nil
}
