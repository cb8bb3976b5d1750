package core

import "math"

// Reference flat ΛCDM density parameters.
const (
	OmegaMatter = 0.3
	OmegaLambda = 1 - OmegaMatter
)

const speedOfLightKmS = SpeedOfLight / 1000.0

// penEta is the η(a, Ωm) fitting function of Pen (1999), which gives the
// flat-universe luminosity distance in closed form to within 0.4% for
// 0.2 ≤ Ωm ≤ 1.
func penEta(a, omegaM float64) float64 {
	s3 := (1 - omegaM) / omegaM
	s := math.Cbrt(s3)
	a2 := a * a
	poly := 1/(a2*a2) -
		0.1540*s/(a2*a) +
		0.4304*s*s/a2 +
		0.19097*s3/a +
		0.066941*s*s3
	return 2 * math.Sqrt(s3+1) * math.Pow(poly, -1.0/8.0)
}

func validCosmology(z, h0 float64) bool {
	return finite(z) && z >= 0 && positive(h0)
}

// LuminosityDistance returns the luminosity distance in Mpc for redshift z
// and Hubble constant h0 (km/s/Mpc) in the reference flat cosmology.
func LuminosityDistance(z, h0 float64) (float64, bool) {
	if !validCosmology(z, h0) {
		return 0, false
	}
	if z == 0 {
		return 0, true
	}
	hubbleDistance := speedOfLightKmS / h0
	dl := hubbleDistance * (1 + z) * (penEta(1, OmegaMatter) - penEta(1/(1+z), OmegaMatter))
	return dl, true
}

// ComovingDistance returns the line-of-sight comoving distance in Mpc.
func ComovingDistance(z, h0 float64) (float64, bool) {
	dl, ok := LuminosityDistance(z, h0)
	if !ok {
		return 0, false
	}
	return dl / (1 + z), true
}

// AngularDiameterDistance returns the angular diameter distance in Mpc.
func AngularDiameterDistance(z, h0 float64) (float64, bool) {
	dl, ok := LuminosityDistance(z, h0)
	if !ok {
		return 0, false
	}
	return dl / ((1 + z) * (1 + z)), true
}

// HubbleLawDistance returns the linear Hubble-law distance cz/H0 in Mpc,
// valid only for z ≪ 1.
func HubbleLawDistance(z, h0 float64) (float64, bool) {
	if !validCosmology(z, h0) {
		return 0, false
	}
	return speedOfLightKmS * z / h0, true
}

// hubbleRateSI converts H0 from km/s/Mpc to 1/s.
func hubbleRateSI(h0 float64) float64 {
	return h0 * 1000.0 / Megaparsec
}

// RedshiftToAge returns the age of the universe in Gyr at redshift z in the
// reference cosmology (H0 = 70, Ωm = 0.3, ΩΛ = 0.7), using the exact matter
// plus Λ solution.
func RedshiftToAge(z float64) (float64, bool) {
	if !finite(z) || z < 0 {
		return 0, false
	}
	h := hubbleRateSI(HubbleConstant)
	x := math.Sqrt(OmegaLambda/OmegaMatter) * math.Pow(1+z, -1.5)
	seconds := 2 / (3 * h * math.Sqrt(OmegaLambda)) * math.Asinh(x)
	return seconds / (1e9 * JulianYear), true
}

// LookbackTime returns the light-travel time in Gyr from redshift z.
func LookbackTime(z float64) (float64, bool) {
	age, ok := RedshiftToAge(z)
	if !ok {
		return 0, false
	}
	now, _ := RedshiftToAge(0)
	return now - age, true
}
