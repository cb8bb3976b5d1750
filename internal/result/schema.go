// Package result holds the schema-fixed composite records returned by the
// structured astro functions, and their JSON and protobuf encodings.
package result

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownSchema is returned when a schema identifier is not registered.
	ErrUnknownSchema = errors.New("unknown result schema")
	// ErrFieldMismatch is returned when values do not fit a schema's fields.
	ErrFieldMismatch = errors.New("result field mismatch")
)

// Schema identifiers.
const (
	SchemaEnhancedCoordinates  = "enhanced_coordinates"
	SchemaSphericalCoordinates = "spherical_coordinates"
	SchemaBodyModel            = "body_model"
	SchemaOrbitalElements      = "orbital_elements"
	SchemaCatalogInfo          = "catalog_info"
)

// Kind is the scalar type of a record field.
type Kind int

const (
	KindFloat Kind = iota + 1
	KindInt
	KindText
	KindTextList
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "DOUBLE"
	case KindInt:
		return "BIGINT"
	case KindText:
		return "VARCHAR"
	case KindTextList:
		return "VARCHAR[]"
	default:
		return "UNKNOWN"
	}
}

// Field describes one named slot of a schema.
type Field struct {
	Name     string
	Kind     Kind
	Nullable bool
}

// Schema is an ordered, immutable field list bound to an identifier.
type Schema struct {
	id     string
	fields []Field
	index  map[string]int
}

// ID returns the schema identifier.
func (s *Schema) ID() string { return s.id }

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns a copy of the field list in schema order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Field returns the field at position i.
func (s *Schema) Field(i int) Field { return s.fields[i] }

// Index returns the position of the named field, or -1.
func (s *Schema) Index(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

func newSchema(id string, fields ...Field) *Schema {
	s := &Schema{id: id, fields: fields, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("result: duplicate field %q in schema %q", f.Name, id))
		}
		s.index[f.Name] = i
	}
	return s
}

func req(name string, kind Kind) Field { return Field{Name: name, Kind: kind} }
func opt(name string, kind Kind) Field { return Field{Name: name, Kind: kind, Nullable: true} }

// schemas is populated once at package initialisation and never written again.
var schemas = map[string]*Schema{
	SchemaEnhancedCoordinates: newSchema(SchemaEnhancedCoordinates,
		req("x", KindFloat),
		req("y", KindFloat),
		req("z", KindFloat),
		req("ra", KindFloat),
		req("dec", KindFloat),
		req("distance", KindFloat),
		req("coordinate_system", KindText),
		req("epoch", KindFloat),
	),
	SchemaSphericalCoordinates: newSchema(SchemaSphericalCoordinates,
		opt("ra", KindFloat),
		opt("dec", KindFloat),
		req("distance", KindFloat),
		req("coordinate_system", KindText),
		req("epoch", KindFloat),
	),
	SchemaBodyModel: newSchema(SchemaBodyModel,
		req("body_class", KindText),
		req("mass_kg", KindFloat),
		req("radius_m", KindFloat),
		opt("density_kg_m3", KindFloat),
		opt("escape_velocity_m_s", KindFloat),
		opt("surface_gravity_m_s2", KindFloat),
		opt("luminosity_w", KindFloat),
		opt("effective_temperature_k", KindFloat),
	),
	SchemaOrbitalElements: newSchema(SchemaOrbitalElements,
		req("semi_major_axis_m", KindFloat),
		req("eccentricity", KindFloat),
		req("inclination_deg", KindFloat),
		req("longitude_ascending_node_deg", KindFloat),
		req("argument_of_periapsis_deg", KindFloat),
		req("mean_anomaly_deg", KindFloat),
		req("epoch_jd", KindFloat),
		req("central_mass_kg", KindFloat),
		req("reference_frame", KindText),
		req("period_s", KindFloat),
		req("mean_motion_rad_s", KindFloat),
		req("periapsis_m", KindFloat),
		req("apoapsis_m", KindFloat),
	),
	SchemaCatalogInfo: newSchema(SchemaCatalogInfo,
		req("catalog", KindText),
		opt("version", KindText),
		opt("coordinate_system", KindText),
		opt("epoch", KindFloat),
		req("available_integrations", KindTextList),
		req("supported_functions", KindTextList),
	),
}

// Lookup returns the registered schema for id.
func Lookup(id string) (*Schema, error) {
	s, ok := schemas[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, id)
	}
	return s, nil
}

// SchemaIDs lists the registered schema identifiers in sorted order.
func SchemaIDs() []string {
	ids := make([]string, 0, len(schemas))
	for id := range schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
