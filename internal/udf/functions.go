package udf

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/astro-kernel/catalog"
	"github.com/signalsfoundry/astro-kernel/core"
	"github.com/signalsfoundry/astro-kernel/internal/result"
	"github.com/signalsfoundry/astro-kernel/model"
)

func doubles(names ...string) []Param {
	ps := make([]Param, len(names))
	for i, n := range names {
		ps[i] = Param{Name: n, Type: TypeDouble}
	}
	return ps
}

func floats(args []Value) []float64 {
	xs := make([]float64, len(args))
	for i, a := range args {
		xs[i], _ = a.Float()
	}
	return xs
}

func text(args []Value, i int) string {
	s, _ := args[i].Text()
	return s
}

func integer(args []Value, i int) int64 {
	n, _ := args[i].Int()
	return n
}

func optional(v float64, ok bool) (Value, error) {
	if !ok {
		return Null(), nil
	}
	return Double(v), nil
}

func record(rec result.Record, ok bool, err error) (Value, error) {
	if err != nil {
		return Null(), err
	}
	if !ok {
		return Null(), nil
	}
	return Struct(rec), nil
}

// scalar registers an all-DOUBLE function returning DOUBLE.
func scalar(name, desc string, fn func(x []float64) (float64, bool), params ...string) *function {
	return &function{
		sig: Signature{Name: name, Params: doubles(params...), Returns: TypeDouble, Description: desc},
		handler: func(args []Value) (Value, error) {
			return optional(fn(floats(args)))
		},
	}
}

func unary(fn func(float64) (float64, bool)) func([]float64) (float64, bool) {
	return func(x []float64) (float64, bool) { return fn(x[0]) }
}

func binary(fn func(float64, float64) (float64, bool)) func([]float64) (float64, bool) {
	return func(x []float64) (float64, bool) { return fn(x[0], x[1]) }
}

func constantFunctions() []*function {
	names := core.ConstantNames()
	out := make([]*function, 0, len(names)+2)
	for _, n := range names {
		v, _ := core.Constant(n)
		out = append(out, &function{
			sig: Signature{Name: "const_" + n, Returns: TypeDouble, Description: n + " in SI units"},
			handler: func([]Value) (Value, error) {
				return Double(v), nil
			},
		})
	}
	out = append(out,
		&function{
			sig: Signature{
				Name:        "astro_constant",
				Params:      []Param{{Name: "name", Type: TypeVarchar}},
				Returns:     TypeDouble,
				Description: "named physical constant in SI units",
			},
			handler: func(args []Value) (Value, error) {
				v, err := core.Constant(text(args, 0))
				if err != nil {
					return Null(), err
				}
				return Double(v), nil
			},
		},
		&function{
			sig: Signature{
				Name: "convert_units",
				Params: []Param{
					{Name: "value", Type: TypeDouble},
					{Name: "from_unit", Type: TypeVarchar},
					{Name: "to_unit", Type: TypeVarchar},
					{Name: "kind", Type: TypeVarchar},
				},
				Returns:     TypeDouble,
				Description: "rescale a length, mass or time between units",
			},
			handler: func(args []Value) (Value, error) {
				kind, err := core.ParseQuantityKind(text(args, 3))
				if err != nil {
					return Null(), err
				}
				value, _ := args[0].Float()
				v, err := core.Convert(value, text(args, 1), text(args, 2), kind)
				if err != nil {
					return Null(), err
				}
				return Double(v), nil
			},
		},
	)
	return out
}

func coordinateFunctions() []*function {
	return []*function{
		scalar("angular_separation", "great-circle separation in degrees",
			func(x []float64) (float64, bool) { return core.AngularSeparation(x[0], x[1], x[2], x[3]) },
			"ra1", "dec1", "ra2", "dec2"),
		{
			sig: Signature{
				Name:        "radec_to_cartesian",
				Params:      doubles("ra", "dec", "distance"),
				Returns:     TypeStruct,
				Schema:      result.SchemaEnhancedCoordinates,
				Description: "equatorial position with Cartesian components",
			},
			handler: func(args []Value) (Value, error) {
				x := floats(args)
				return record(core.EnhancedCoordinates(x[0], x[1], x[2]))
			},
		},
		{
			sig: Signature{
				Name:        "cartesian_to_radec",
				Params:      doubles("x", "y", "z"),
				Returns:     TypeStruct,
				Schema:      result.SchemaSphericalCoordinates,
				Description: "Cartesian position as RA, Dec and distance",
			},
			handler: func(args []Value) (Value, error) {
				x := floats(args)
				return record(core.SphericalCoordinates(x[0], x[1], x[2]))
			},
		},
		{
			sig: Signature{
				Name:        "celestial_point",
				Params:      doubles("ra", "dec", "distance"),
				Returns:     TypeVarchar,
				Description: "POINT Z well-known text of the Cartesian position",
			},
			handler: func(args []Value) (Value, error) {
				x := floats(args)
				wkt, ok := core.CelestialPointWKT(x[0], x[1], x[2])
				if !ok {
					return Null(), nil
				}
				return Varchar(wkt), nil
			},
		},
		scalar("parallax_to_distance", "distance in parsecs from parallax in milliarcseconds",
			unary(core.ParallaxToDistance), "parallax_mas"),
	}
}

func photometryFunctions() []*function {
	return []*function{
		scalar("mag_to_flux", "flux relative to the zero point", binary(core.MagToFlux), "magnitude", "zero_point"),
		scalar("flux_to_mag", "magnitude from flux", binary(core.FluxToMag), "flux", "zero_point"),
		scalar("distance_modulus", "5 log10(d / 10 pc)", unary(core.DistanceModulus), "distance_pc"),
		scalar("absolute_mag", "absolute magnitude from apparent magnitude", binary(core.AbsoluteMag), "apparent_mag", "distance_pc"),
		scalar("apparent_mag", "apparent magnitude from absolute magnitude", binary(core.ApparentMag), "absolute_mag", "distance_pc"),
	}
}

func cosmologyFunctions() []*function {
	return []*function{
		scalar("luminosity_distance", "luminosity distance in Mpc", binary(core.LuminosityDistance), "redshift", "h0"),
		scalar("comoving_distance", "line-of-sight comoving distance in Mpc", binary(core.ComovingDistance), "redshift", "h0"),
		scalar("angular_diameter_distance", "angular diameter distance in Mpc", binary(core.AngularDiameterDistance), "redshift", "h0"),
		scalar("hubble_law_distance", "linear Hubble-law distance cz/H0 in Mpc", binary(core.HubbleLawDistance), "redshift", "h0"),
		scalar("redshift_to_age", "age of the universe at redshift z in Gyr", unary(core.RedshiftToAge), "redshift"),
		scalar("lookback_time", "lookback time to redshift z in Gyr", unary(core.LookbackTime), "redshift"),
	}
}

func orbitFunctions() []*function {
	return []*function{
		{
			sig: Signature{
				Name: "orbit_make",
				Params: append(doubles(
					"semi_major_axis_m", "eccentricity", "inclination_deg",
					"longitude_ascending_node_deg", "argument_of_periapsis_deg",
					"mean_anomaly_deg", "epoch_jd", "central_mass_kg",
				), Param{Name: "reference_frame", Type: TypeVarchar}),
				Returns:     TypeStruct,
				Schema:      result.SchemaOrbitalElements,
				Description: "validated Keplerian elements with derived period and apsides",
			},
			handler: func(args []Value) (Value, error) {
				frame, err := model.ParseReferenceFrame(text(args, 8))
				if err != nil {
					return Null(), nil
				}
				x := floats(args[:8])
				o, ok := core.MakeOrbit(core.OrbitInput{
					SemiMajorAxisM:            x[0],
					Eccentricity:              x[1],
					InclinationDeg:            x[2],
					LongitudeAscendingNodeDeg: x[3],
					ArgumentOfPeriapsisDeg:    x[4],
					MeanAnomalyDeg:            x[5],
					EpochJD:                   x[6],
					CentralMassKg:             x[7],
					Frame:                     frame,
				})
				if !ok {
					return Null(), nil
				}
				rec, err := core.OrbitRecord(o)
				return record(rec, true, err)
			},
		},
		scalar("orbit_period", "Keplerian period in seconds", binary(core.OrbitPeriod), "semi_major_axis_m", "central_mass_kg"),
		scalar("orbit_mean_motion", "mean motion in radians per second", binary(core.OrbitMeanMotion), "semi_major_axis_m", "central_mass_kg"),
		scalar("orbit_mean_anomaly_at", "mean anomaly in degrees propagated to a Julian date",
			func(x []float64) (float64, bool) { return core.MeanAnomalyAt(x[0], x[1], x[2], x[3], x[4]) },
			"mean_anomaly_deg", "epoch_jd", "semi_major_axis_m", "central_mass_kg", "jd"),
		{
			sig: Signature{
				Name: "julian_date",
				Params: []Param{
					{Name: "year", Type: TypeBigInt},
					{Name: "month", Type: TypeBigInt},
					{Name: "day", Type: TypeBigInt},
					{Name: "hour", Type: TypeBigInt},
					{Name: "minute", Type: TypeBigInt},
					{Name: "second", Type: TypeBigInt},
				},
				Returns:     TypeDouble,
				Description: "Julian date of a UTC calendar instant",
			},
			handler: func(args []Value) (Value, error) {
				var f [6]int
				for i := range f {
					n := integer(args, i)
					if n < math.MinInt32 || n > math.MaxInt32 {
						return Null(), nil
					}
					f[i] = int(n)
				}
				return optional(core.JulianDate(f[0], f[1], f[2], f[3], f[4], f[5]))
			},
		},
		scalar("greenwich_sidereal_angle", "Greenwich mean sidereal angle in degrees", unary(core.GreenwichSiderealAngle), "jd"),
	}
}

func sectorFunctions() []*function {
	point := func(args []Value) core.Vec3 {
		x := floats(args[:3])
		return core.Vec3{X: x[0], Y: x[1], Z: x[2]}
	}
	depthParam := Param{Name: "depth", Type: TypeBigInt}
	depthOf := func(args []Value, i int) int {
		d := integer(args, i)
		if d < math.MinInt32 || d > math.MaxInt32 {
			// far outside [0, MaxSectorDepth]; let the encoder reject it
			return -1
		}
		return int(d)
	}

	return []*function{
		{
			sig: Signature{
				Name:        "sector_id",
				Params:      append(doubles("x", "y", "z"), depthParam),
				Returns:     TypeBigInt,
				Description: "octree sector code of a point",
			},
			handler: func(args []Value) (Value, error) {
				s, err := core.SectorOf(point(args), depthOf(args, 3))
				if err != nil {
					return Null(), err
				}
				return BigInt(int64(s.Code)), nil
			},
		},
		{
			sig: Signature{
				Name:        "sector_id_scaled",
				Params:      append(append(doubles("x", "y", "z"), depthParam), Param{Name: "half_extent", Type: TypeDouble}),
				Returns:     TypeBigInt,
				Description: "octree sector code in a root cube of the given half-extent",
			},
			handler: func(args []Value) (Value, error) {
				half, _ := args[4].Float()
				s, err := core.SectorOfScaled(point(args), depthOf(args, 3), half)
				if err != nil {
					return Null(), err
				}
				return BigInt(int64(s.Code)), nil
			},
		},
		{
			sig: Signature{
				Name:        "sector_path",
				Params:      append(doubles("x", "y", "z"), depthParam),
				Returns:     TypeVarchar,
				Description: "octal octant path of a point's sector",
			},
			handler: func(args []Value) (Value, error) {
				s, err := core.SectorOf(point(args), depthOf(args, 3))
				if err != nil {
					return Null(), err
				}
				return Varchar(s.String()), nil
			},
		},
		{
			sig: Signature{
				Name:        "sector_parent",
				Params:      []Param{{Name: "code", Type: TypeBigInt}, depthParam},
				Returns:     TypeBigInt,
				Description: "code of the containing sector one level up",
			},
			handler: func(args []Value) (Value, error) {
				code := integer(args, 0)
				if code < 0 {
					return Null(), fmt.Errorf("%w: negative sector code %d", core.ErrDomain, code)
				}
				p, err := core.SectorParent(uint64(code), depthOf(args, 1))
				if err != nil {
					return Null(), err
				}
				return BigInt(int64(p.Code)), nil
			},
		},
	}
}

func catalogFunctions(info CatalogInfo, names func() []string) []*function {
	return []*function{
		{
			sig: Signature{
				Name:        "catalog_info",
				Params:      []Param{{Name: "catalog", Type: TypeVarchar}},
				Returns:     TypeStruct,
				Schema:      result.SchemaCatalogInfo,
				Description: "catalog descriptor and the functions this kernel supports",
			},
			handler: func(args []Value) (Value, error) {
				name := text(args, 0)
				var d model.CatalogDescriptor
				if info != nil {
					d = info.Info(name)
				} else {
					d = catalog.Default(name)
				}
				rec, err := core.CatalogRecord(d, names())
				return record(rec, true, err)
			},
		},
	}
}
