package udf

import (
	"github.com/signalsfoundry/astro-kernel/core"
	"github.com/signalsfoundry/astro-kernel/internal/result"
	"github.com/signalsfoundry/astro-kernel/model"
)

// bodyFunctionNames maps each single-mass body class onto its function name.
var bodyFunctionNames = []struct {
	name  string
	class model.BodyClass
}{
	{"body_star_ms", model.BodyMainSequenceStar},
	{"body_star_white_dwarf", model.BodyWhiteDwarf},
	{"body_star_neutron", model.BodyNeutronStar},
	{"body_brown_dwarf", model.BodyBrownDwarf},
	{"body_black_hole", model.BodyBlackHole},
	{"body_planet_rocky", model.BodyRockyPlanet},
	{"body_planet_gas_giant", model.BodyGasGiant},
	{"body_planet_ice_giant", model.BodyIceGiant},
}

func massUnitName(class model.BodyClass) string {
	switch core.MassUnit(class) {
	case core.SolarMass:
		return "solar masses"
	case core.JupiterMass:
		return "Jupiter masses"
	default:
		return "Earth masses"
	}
}

func bodyRecord(b model.BodyModel, ok bool) (Value, error) {
	if !ok {
		return Null(), nil
	}
	rec, err := core.BodyRecord(b)
	return record(rec, true, err)
}

func bodyFunctions() []*function {
	out := make([]*function, 0, len(bodyFunctionNames)+2)
	for _, bf := range bodyFunctionNames {
		class := bf.class
		out = append(out, &function{
			sig: Signature{
				Name:        bf.name,
				Params:      doubles("mass"),
				Returns:     TypeStruct,
				Schema:      result.SchemaBodyModel,
				Description: string(class) + " model; mass in " + massUnitName(class),
			},
			handler: func(args []Value) (Value, error) {
				mass, _ := args[0].Float()
				return bodyRecord(core.ModelBody(class, mass))
			},
		})
	}
	out = append(out,
		&function{
			sig: Signature{
				Name:        "body_asteroid",
				Params:      doubles("diameter_km", "density_kg_m3"),
				Returns:     TypeStruct,
				Schema:      result.SchemaBodyModel,
				Description: "homogeneous spherical asteroid",
			},
			handler: func(args []Value) (Value, error) {
				x := floats(args)
				return bodyRecord(core.ModelAsteroid(x[0], x[1]))
			},
		},
		&function{
			sig: Signature{
				Name:        "body_model",
				Params:      []Param{{Name: "body_class", Type: TypeVarchar}, {Name: "mass", Type: TypeDouble}},
				Returns:     TypeStruct,
				Schema:      result.SchemaBodyModel,
				Description: "body model for a class tag; mass in the class's unit",
			},
			handler: func(args []Value) (Value, error) {
				class, err := model.ParseBodyClass(text(args, 0))
				if err != nil || class == model.BodyAsteroid {
					return Null(), nil
				}
				mass, _ := args[1].Float()
				return bodyRecord(core.ModelBody(class, mass))
			},
		},
	)
	return out
}
