package models

import (
	"github.com/deadsy/sdfx/sdf"
)

// MassageTip is a replacement massage gun attachment: a stepped shaft
// matching the gun's socket, topped with a ball head, with a bore down
// the shaft axis.
type MassageTip struct {
	// InnerDiameter is the bore through the shaft.
	InnerDiameter float64

	// Ball head.
	BallDiameter float64
	BallOverlap  float64

	// sections are the measured shaft steps, base first. The steps match
	// the gun's socket, so they are not exposed as parameters.
	sections []shaftSection
}

// shaftSection is one cylindrical step of the shaft.
type shaftSection struct {
	diameter, length float64
}

// NewMassageTip returns the attachment with the measured socket profile.
func NewMassageTip() *MassageTip {
	return &MassageTip{
		InnerDiameter: 15.0,
		BallDiameter:  40.0,
		BallOverlap:   10.0,
		sections: []shaftSection{
			{18.75, 11.94},
			{18.95, 2.09},
			{18.82, 5.63},
			{23.70, 1.91},
			{23.25, 30.00},
		},
	}
}

func (m *MassageTip) Name() string { return "massage-tip" }

// Version is 2: the ball overlap was deepened after v1 heads snapped off
// at the neck.
func (m *MassageTip) Version() int { return 2 }

func (m *MassageTip) Description() string {
	return "Massage gun attachment with a stepped mounting shaft and a " +
		"ball head."
}

// Create builds the attachment with the shaft base at z=0 and the ball
// on top.
func (m *MassageTip) Create() (sdf.SDF3, error) {
	parts := make([]sdf.SDF3, 0, len(m.sections)+1)

	// Stack the shaft sections base first.
	z := 0.0
	for _, section := range m.sections {
		step, err := cylinderFrom(0, 0, z, section.length, section.diameter/2)
		if err != nil {
			return nil, err
		}
		parts = append(parts, step)
		z += section.length
	}
	shaftLength := z

	// The ball sinks BallOverlap into the shaft so the neck is thick
	// enough not to snap under load.
	ball, err := sdf.Sphere3D(m.BallDiameter / 2)
	if err != nil {
		return nil, err
	}
	ballCenter := shaftLength - m.BallOverlap + m.BallDiameter/2
	parts = append(parts, translate(ball, 0, 0, ballCenter))

	solid := sdf.Union3D(parts...)

	// Bore through the shaft. Extends past both ends of the shaft for a
	// clean boolean, but stops short of the ball interior.
	bore, err := cylinderFrom(0, 0, -1, shaftLength+2, m.InnerDiameter/2)
	if err != nil {
		return nil, err
	}
	return sdf.Difference3D(solid, bore), nil
}

func (m *MassageTip) refs() paramRefs {
	return paramRefs{
		"innerDiameter": &m.InnerDiameter,
		"ballDiameter":  &m.BallDiameter,
		"ballOverlap":   &m.BallOverlap,
	}
}

// Params returns the adjustable dimensions.
func (m *MassageTip) Params() map[string]float64 { return paramValues(m.refs()) }

// SetParam overrides a single dimension by name.
func (m *MassageTip) SetParam(name string, value float64) error {
	return setParam(m.refs(), name, value)
}
