package core

import (
	"github.com/signalsfoundry/astro-kernel/internal/result"
	"github.com/signalsfoundry/astro-kernel/model"
)

// EnhancedCoordinates converts RA/Dec/distance to Cartesian and packs both
// forms, plus frame metadata, into an enhanced_coordinates record. ok is
// false when the inputs are out of domain.
func EnhancedCoordinates(ra, dec, distance float64) (rec result.Record, ok bool, err error) {
	v, ok := ToCartesian(ra, dec, distance)
	if !ok {
		return result.Record{}, false, nil
	}
	rec, err = result.Encode(result.SchemaEnhancedCoordinates,
		result.Float(v.X),
		result.Float(v.Y),
		result.Float(v.Z),
		result.Float(ra),
		result.Float(dec),
		result.Float(distance),
		result.Text(model.CoordinateSystemICRS),
		result.Float(model.EpochJ2000),
	)
	return rec, err == nil, err
}

// SphericalCoordinates converts a Cartesian position into a
// spherical_coordinates record. RA and Dec are null at the origin.
func SphericalCoordinates(x, y, z float64) (rec result.Record, ok bool, err error) {
	s, ok := ToSpherical(Vec3{X: x, Y: y, Z: z})
	if !ok {
		return result.Record{}, false, nil
	}
	ra, dec := result.Null(), result.Null()
	if s.Angular {
		ra, dec = result.Float(s.RADeg), result.Float(s.DecDeg)
	}
	rec, err = result.Encode(result.SchemaSphericalCoordinates,
		ra,
		dec,
		result.Float(s.Distance),
		result.Text(model.CoordinateSystemICRS),
		result.Float(model.EpochJ2000),
	)
	return rec, err == nil, err
}

// BodyRecord packs a body model into a body_model record.
func BodyRecord(b model.BodyModel) (result.Record, error) {
	return result.Encode(result.SchemaBodyModel,
		result.Text(string(b.Class)),
		result.Float(b.MassKg),
		result.Float(b.RadiusM),
		result.OptionalFloat(b.DensityKgM3),
		result.OptionalFloat(b.EscapeVelocityMS),
		result.OptionalFloat(b.SurfaceGravityMS2),
		result.OptionalFloat(b.LuminosityW),
		result.OptionalFloat(b.EffectiveTemperature),
	)
}

// OrbitRecord packs validated orbital elements into an orbital_elements record.
func OrbitRecord(o model.OrbitalElements) (result.Record, error) {
	return result.Encode(result.SchemaOrbitalElements,
		result.Float(o.SemiMajorAxisM),
		result.Float(o.Eccentricity),
		result.Float(o.InclinationDeg),
		result.Float(o.LongitudeAscendingNodeDeg),
		result.Float(o.ArgumentOfPeriapsisDeg),
		result.Float(o.MeanAnomalyDeg),
		result.Float(o.EpochJD),
		result.Float(o.CentralMassKg),
		result.Text(string(o.Frame)),
		result.Float(o.PeriodS),
		result.Float(o.MeanMotionRadS),
		result.Float(o.PeriapsisM),
		result.Float(o.ApoapsisM),
	)
}

// CatalogRecord packs a catalog descriptor and the list of functions the
// kernel exposes into a catalog_info record. Unknown descriptors with no
// coordinate system still encode, with null frame fields.
func CatalogRecord(d model.CatalogDescriptor, functions []string) (result.Record, error) {
	version, system, epoch := result.Null(), result.Null(), result.Null()
	if d.Version != "" {
		version = result.Text(d.Version)
	}
	if d.CoordinateSystem != "" {
		system = result.Text(d.CoordinateSystem)
		epoch = result.Float(d.Epoch)
	}
	return result.Encode(result.SchemaCatalogInfo,
		result.Text(d.Name),
		version,
		system,
		epoch,
		result.TextList(d.IntegrationTags()),
		result.TextList(functions),
	)
}
