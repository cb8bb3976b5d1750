package core

import (
	"math"

	"github.com/signalsfoundry/astro-kernel/model"
)

// Input mass units per body class: solar masses for stars and stellar
// remnants, Jupiter masses for brown dwarfs and gas giants, Earth masses for
// rocky planets and ice giants.

const (
	// MaxNeutronStarMass is the upper end of the neutron star branch in solar
	// masses; heavier remnants collapse.
	MaxNeutronStarMass = 2.3

	neutronStarRadiusKm    = 12.0
	neutronStarRadiusSlope = 0.5 // km per solar mass about 1.4 M☉
	neutronStarMinRadiusKm = 10.5
	neutronStarMaxRadiusKm = 13.5

	whiteDwarfRadiusScale = 0.0112 // R☉
)

// MassUnit returns the SI size of the mass unit ModelBody expects for class.
func MassUnit(class model.BodyClass) float64 {
	switch class {
	case model.BodyBrownDwarf, model.BodyGasGiant:
		return JupiterMass
	case model.BodyRockyPlanet, model.BodyIceGiant:
		return EarthMass
	default:
		return SolarMass
	}
}

// ModelBody derives a physical model for a body of the given class from its
// mass in the class's natural unit (see MassUnit). Asteroids are modelled by
// ModelAsteroid instead. ok is false for non-positive masses and for masses
// outside the branch a relation describes.
func ModelBody(class model.BodyClass, mass float64) (model.BodyModel, bool) {
	if !positive(mass) {
		return model.BodyModel{}, false
	}
	return physical(modelBody(class, mass))
}

func modelBody(class model.BodyClass, mass float64) (model.BodyModel, bool) {
	massKg := mass * MassUnit(class)

	switch class {
	case model.BodyMainSequenceStar:
		return mainSequence(mass), true
	case model.BodyWhiteDwarf:
		return whiteDwarf(massKg)
	case model.BodyNeutronStar:
		return neutronStar(mass)
	case model.BodyBlackHole:
		return blackHole(massKg), true
	case model.BodyBrownDwarf, model.BodyGasGiant, model.BodyRockyPlanet, model.BodyIceGiant:
		return planetary(class, massKg), true
	default:
		return model.BodyModel{}, false
	}
}

// ModelAsteroid derives a model from a diameter in kilometres and a bulk
// density in kg/m³, treating the body as a uniform sphere.
func ModelAsteroid(diameterKm, densityKgM3 float64) (model.BodyModel, bool) {
	if !positive(diameterKm, densityKgM3) {
		return model.BodyModel{}, false
	}
	radiusM := diameterKm * 1000 / 2
	massKg := densityKgM3 * sphereVolume(radiusM)
	return physical(withDynamics(model.BodyModel{Class: model.BodyAsteroid, MassKg: massKg, RadiusM: radiusM}), true)
}

// physical rejects models whose mass or radius overflowed or underflowed
// while being derived from finite inputs.
func physical(b model.BodyModel, ok bool) (model.BodyModel, bool) {
	if !ok || !positive(b.MassKg, b.RadiusM) {
		return model.BodyModel{}, false
	}
	return b, true
}

func mainSequence(mSun float64) model.BodyModel {
	var rSun float64
	if mSun < 1 {
		rSun = math.Pow(mSun, 0.8)
	} else {
		rSun = math.Pow(mSun, 0.57)
	}

	var lSun float64
	switch {
	case mSun < 0.43:
		lSun = 0.23 * math.Pow(mSun, 2.3)
	case mSun < 2:
		lSun = math.Pow(mSun, 4)
	case mSun < 55:
		lSun = 1.4 * math.Pow(mSun, 3.5)
	default:
		lSun = 32000 * mSun
	}

	radiusM := rSun * SolarRadius
	luminosity := lSun * SolarLuminosity
	teff := math.Pow(luminosity/(4*math.Pi*radiusM*radiusM*StefanBoltzmann), 0.25)

	b := withDynamics(model.BodyModel{
		Class:   model.BodyMainSequenceStar,
		MassKg:  mSun * SolarMass,
		RadiusM: radiusM,
	})
	b.LuminosityW = ptr(luminosity)
	b.EffectiveTemperature = ptr(teff)
	return b
}

// whiteDwarf uses the Nauenberg (1972) degenerate mass–radius relation,
// which shrinks to zero radius at the Chandrasekhar mass.
func whiteDwarf(massKg float64) (model.BodyModel, bool) {
	ratio := massKg / ChandrasekharMass
	if ratio >= 1 {
		return model.BodyModel{}, false
	}
	term := math.Pow(ratio, -2.0/3.0) - math.Pow(ratio, 2.0/3.0)
	radiusM := whiteDwarfRadiusScale * SolarRadius * math.Sqrt(term)
	return withDynamics(model.BodyModel{Class: model.BodyWhiteDwarf, MassKg: massKg, RadiusM: radiusM}), true
}

func neutronStar(mSun float64) (model.BodyModel, bool) {
	if mSun > MaxNeutronStarMass {
		return model.BodyModel{}, false
	}
	radiusKm := clamp(neutronStarRadiusKm-neutronStarRadiusSlope*(mSun-1.4), neutronStarMinRadiusKm, neutronStarMaxRadiusKm)
	return withDynamics(model.BodyModel{
		Class:   model.BodyNeutronStar,
		MassKg:  mSun * SolarMass,
		RadiusM: radiusKm * 1000,
	}), true
}

func blackHole(massKg float64) model.BodyModel {
	b := withDynamics(model.BodyModel{
		Class:   model.BodyBlackHole,
		MassKg:  massKg,
		RadiusM: SchwarzschildRadius(massKg),
	})
	b.EscapeVelocityMS = ptr(SpeedOfLight)
	return b
}

// SchwarzschildRadius returns 2GM/c² in metres for a mass in kilograms.
func SchwarzschildRadius(massKg float64) float64 {
	return 2 * GravitationalConstant * massKg / (SpeedOfLight * SpeedOfLight)
}

// Chen & Kipping (2017) forecaster power laws, Earth units.
const (
	terranNeptunianBreak = 2.04   // M⊕
	neptunianJovianBreak = 131.58 // M⊕ (0.414 MJ)
)

func planetaryRadiusEarth(mEarth float64) float64 {
	switch {
	case mEarth < terranNeptunianBreak:
		return 1.008 * math.Pow(mEarth, 0.279)
	case mEarth < neptunianJovianBreak:
		return 0.808 * math.Pow(mEarth, 0.589)
	default:
		return 17.74 * math.Pow(mEarth, -0.044)
	}
}

func planetary(class model.BodyClass, massKg float64) model.BodyModel {
	radiusM := planetaryRadiusEarth(massKg/EarthMass) * EarthRadius
	return withDynamics(model.BodyModel{Class: class, MassKg: massKg, RadiusM: radiusM})
}

func sphereVolume(radiusM float64) float64 {
	return 4.0 / 3.0 * math.Pi * radiusM * radiusM * radiusM
}

// withDynamics fills density, escape velocity and surface gravity from mass
// and radius.
func withDynamics(b model.BodyModel) model.BodyModel {
	if b.RadiusM <= 0 {
		return b
	}
	gm := GravitationalConstant * b.MassKg
	b.DensityKgM3 = ptr(b.MassKg / sphereVolume(b.RadiusM))
	b.EscapeVelocityMS = ptr(math.Sqrt(2 * gm / b.RadiusM))
	b.SurfaceGravityMS2 = ptr(gm / (b.RadiusM * b.RadiusM))
	return b
}
