// Package catalog holds the read-only catalog descriptor table consulted by
// the catalog_info function.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/signalsfoundry/astro-kernel/model"
)

// ErrInvalidDescriptor reports a descriptor that cannot be registered.
var ErrInvalidDescriptor = errors.New("invalid catalog descriptor")

// DefaultIntegrations are advertised for catalogs the provider does not know.
var DefaultIntegrations = []model.Integration{
	model.IntegrationArrow,
	model.IntegrationSpatial,
	model.IntegrationParquet,
}

var builtins = []model.CatalogDescriptor{
	{
		Name:             "gaia_dr3",
		Version:          "DR3",
		CoordinateSystem: model.CoordinateSystemICRS,
		Epoch:            2016.0,
		Integrations:     []model.Integration{model.IntegrationArrow, model.IntegrationSpatial, model.IntegrationParquet, model.IntegrationGeoParquet},
	},
	{
		Name:             "hipparcos",
		Version:          "2007",
		CoordinateSystem: model.CoordinateSystemICRS,
		Epoch:            1991.25,
		Integrations:     []model.Integration{model.IntegrationArrow, model.IntegrationSpatial, model.IntegrationParquet},
	},
	{
		Name:             "tycho2",
		Version:          "2",
		CoordinateSystem: model.CoordinateSystemICRS,
		Epoch:            2000.0,
		Integrations:     []model.Integration{model.IntegrationArrow, model.IntegrationSpatial, model.IntegrationParquet},
	},
	{
		Name:             "2mass",
		Version:          "PSC",
		CoordinateSystem: model.CoordinateSystemICRS,
		Epoch:            2000.0,
		Integrations:     []model.Integration{model.IntegrationArrow, model.IntegrationSpatial, model.IntegrationParquet},
	},
	{
		Name:             "sdss_dr17",
		Version:          "DR17",
		CoordinateSystem: model.CoordinateSystemICRS,
		Epoch:            2000.0,
		Integrations:     []model.Integration{model.IntegrationArrow, model.IntegrationSpatial, model.IntegrationParquet, model.IntegrationJSON},
	},
}

// Provider is an immutable name -> descriptor table. It is safe for
// concurrent use because nothing mutates it after New returns.
type Provider struct {
	byKey map[string]model.CatalogDescriptor
	names []string
}

// New builds a provider from the built-in descriptors plus extra ones.
// An extra descriptor replaces a built-in of the same (case-folded) name.
func New(extra ...model.CatalogDescriptor) (*Provider, error) {
	p := &Provider{byKey: make(map[string]model.CatalogDescriptor, len(builtins)+len(extra))}
	for _, d := range builtins {
		p.byKey[foldName(d.Name)] = known(d)
	}
	for _, d := range extra {
		if err := validate(d); err != nil {
			return nil, err
		}
		p.byKey[foldName(d.Name)] = known(d)
	}
	for _, d := range p.byKey {
		p.names = append(p.names, d.Name)
	}
	sort.Strings(p.names)
	return p, nil
}

// Info returns the descriptor registered under name. Unknown names get the
// default descriptor carrying the requested name and Known=false.
func (p *Provider) Info(name string) model.CatalogDescriptor {
	if p != nil {
		if d, ok := p.byKey[foldName(name)]; ok {
			return clone(d)
		}
	}
	return Default(name)
}

// Names lists the registered catalog names in sorted order.
func (p *Provider) Names() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.names...)
}

// Default is the descriptor reported for an unregistered catalog.
func Default(name string) model.CatalogDescriptor {
	return model.CatalogDescriptor{
		Name:             name,
		CoordinateSystem: model.CoordinateSystemICRS,
		Epoch:            model.EpochJ2000,
		Integrations:     append([]model.Integration(nil), DefaultIntegrations...),
	}
}

// foldName normalises a catalog name for lookup. A Caser keeps state between
// calls, so each lookup gets its own.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func validate(d model.CatalogDescriptor) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDescriptor)
	}
	if d.CoordinateSystem == "" {
		return fmt.Errorf("%w: %q has no coordinate system", ErrInvalidDescriptor, d.Name)
	}
	return nil
}

func known(d model.CatalogDescriptor) model.CatalogDescriptor {
	d = clone(d)
	d.Name = strings.TrimSpace(d.Name)
	d.Known = true
	return d
}

func clone(d model.CatalogDescriptor) model.CatalogDescriptor {
	d.Integrations = append([]model.Integration(nil), d.Integrations...)
	return d
}
