package model

import (
	"fmt"
	"strings"
)

// ReferenceFrame tags the frame the orbital elements are expressed in.
type ReferenceFrame string

const (
	FrameICRS          ReferenceFrame = "icrs"
	FrameFK5           ReferenceFrame = "fk5"
	FrameEclipticJ2000 ReferenceFrame = "ecliptic_j2000"
	FrameGalactic      ReferenceFrame = "galactic"
)

var referenceFrames = []ReferenceFrame{FrameICRS, FrameFK5, FrameEclipticJ2000, FrameGalactic}

// ParseReferenceFrame maps a case-insensitive tag onto a ReferenceFrame.
// "ecliptic" is accepted as an alias for ecliptic_j2000.
func ParseReferenceFrame(tag string) (ReferenceFrame, error) {
	norm := strings.ToLower(strings.TrimSpace(tag))
	if norm == "ecliptic" {
		return FrameEclipticJ2000, nil
	}
	for _, f := range referenceFrames {
		if string(f) == norm {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown reference frame %q", tag)
}

// OrbitalElements is a validated Keplerian element set plus the quantities
// derived from it via Kepler's third law.
type OrbitalElements struct {
	SemiMajorAxisM            float64
	Eccentricity              float64
	InclinationDeg            float64
	LongitudeAscendingNodeDeg float64
	ArgumentOfPeriapsisDeg    float64
	MeanAnomalyDeg            float64
	EpochJD                   float64
	CentralMassKg             float64
	Frame                     ReferenceFrame

	PeriodS        float64
	MeanMotionRadS float64
	PeriapsisM     float64
	ApoapsisM      float64
}
