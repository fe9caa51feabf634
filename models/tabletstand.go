package models

import (
	"github.com/deadsy/sdfx/sdf"
)

// TabletStand is a desk stand for a large tablet: a weighted base, a
// riser spacer, and a cradle plate with two side lips that grip the
// tablet edge.
type TabletStand struct {
	// Tablet dimensions plus fit clearances.
	TabletWidth   float64
	Clearance     float64
	WallThickness float64
	LipHeight     float64
	GripGap       float64

	// Base slab.
	BaseWidth  float64
	BaseLength float64
	BaseHeight float64

	// Riser between base and cradle.
	SpacerWidth  float64
	SpacerLength float64
	SpacerHeight float64
}

// NewTabletStand returns the stand sized for a 12.9" tablet.
func NewTabletStand() *TabletStand {
	return &TabletStand{
		TabletWidth:   214.9,
		Clearance:     0.5,
		WallThickness: 2.0,
		LipHeight:     10.0,
		GripGap:       0.2,
		BaseWidth:     140,
		BaseLength:    120,
		BaseHeight:    8,
		SpacerWidth:   60,
		SpacerLength:  40,
		SpacerHeight:  25,
	}
}

func (m *TabletStand) Name() string { return "tablet-stand" }

func (m *TabletStand) Version() int { return 1 }

func (m *TabletStand) Description() string {
	return "Desk stand with a weighted base, riser, and lipped cradle " +
		"that grips the tablet edge."
}

// mountWidth is the cradle plate width: tablet plus walls and clearance
// on both sides.
func (m *TabletStand) mountWidth() float64 {
	return m.TabletWidth + 2*m.WallThickness + 2*m.Clearance
}

// Create builds the stand from the base up. The cradle is offset sideways
// by a sixth of its width so the tablet's weight stays over the base.
func (m *TabletStand) Create() (sdf.SDF3, error) {
	base, err := roundedBoxFrom(0, 0, 0, m.BaseWidth, m.BaseLength, m.BaseHeight, 3.0)
	if err != nil {
		return nil, err
	}

	spacer, err := roundedBoxFrom(0, 0, m.BaseHeight, m.SpacerWidth, m.SpacerLength, m.SpacerHeight, 2.0)
	if err != nil {
		return nil, err
	}

	cradleZ := m.BaseHeight + m.SpacerHeight
	offset := m.mountWidth() / 6

	cradle, err := roundedBoxFrom(offset, 0, cradleZ, m.mountWidth(), m.SpacerLength, m.WallThickness, 0)
	if err != nil {
		return nil, err
	}

	lipThickness := m.WallThickness + m.GripGap
	lipZ := cradleZ + m.WallThickness

	leftLip, err := roundedBoxFrom(offset-m.mountWidth()/2+lipThickness/2, 0, lipZ,
		lipThickness, m.SpacerLength, m.LipHeight, 0)
	if err != nil {
		return nil, err
	}
	rightLip, err := roundedBoxFrom(offset+m.mountWidth()/2-lipThickness/2, 0, lipZ,
		lipThickness, m.SpacerLength, m.LipHeight, 0)
	if err != nil {
		return nil, err
	}

	return sdf.Union3D(base, spacer, cradle, leftLip, rightLip), nil
}

func (m *TabletStand) refs() paramRefs {
	return paramRefs{
		"tabletWidth":   &m.TabletWidth,
		"clearance":     &m.Clearance,
		"wallThickness": &m.WallThickness,
		"lipHeight":     &m.LipHeight,
		"gripGap":       &m.GripGap,
		"baseWidth":     &m.BaseWidth,
		"baseLength":    &m.BaseLength,
		"baseHeight":    &m.BaseHeight,
		"spacerWidth":   &m.SpacerWidth,
		"spacerLength":  &m.SpacerLength,
		"spacerHeight":  &m.SpacerHeight,
	}
}

// Params returns the adjustable dimensions.
func (m *TabletStand) Params() map[string]float64 { return paramValues(m.refs()) }

// SetParam overrides a single dimension by name.
func (m *TabletStand) SetParam(name string, value float64) error {
	return setParam(m.refs(), name, value)
}
