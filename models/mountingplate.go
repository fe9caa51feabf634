package models

import (
	"github.com/deadsy/sdfx/sdf"
)

// MountingPlate is a rectangular wall plate with four corner screw holes,
// a rectangular center cutout, a wire gap at the bottom edge, and a
// raised circular mount wall that accepts a round device body.
type MountingPlate struct {
	// Screw hole layout.
	HoleSpacingLength float64
	HoleSpacingWidth  float64
	HoleDiameter      float64
	EdgePadding       float64
	PlateThickness    float64

	// CenterHolePadding is the margin between the screw holes and the
	// rectangular center cutout.
	CenterHolePadding float64

	// Wire gap through the bottom edge of the plate and mount wall.
	WireGapWidth  float64
	WireGapHeight float64

	// Circular mount wall.
	CircleDiameter     float64
	MountWallThickness float64
	MountHeight        float64
	MountTolerance     float64
}

// NewMountingPlate returns the plate with its as-printed dimensions.
func NewMountingPlate() *MountingPlate {
	return &MountingPlate{
		HoleSpacingLength:  101.0,
		HoleSpacingWidth:   61.0,
		HoleDiameter:       6.0,
		EdgePadding:        5.0,
		PlateThickness:     2.5,
		CenterHolePadding:  10.0,
		WireGapWidth:       8.0,
		WireGapHeight:      50.0,
		CircleDiameter:     100.5,
		MountWallThickness: 2.0,
		MountHeight:        8.0,
		MountTolerance:     0.2,
	}
}

func (m *MountingPlate) Name() string { return "mounting-plate" }

func (m *MountingPlate) Version() int { return 1 }

func (m *MountingPlate) Description() string {
	return "Wall mounting plate with four corner screw holes, a center " +
		"cutout, a bottom wire gap, and a raised circular mount wall."
}

// totalLength and totalWidth are the outer plate dimensions derived from
// the screw spacing plus padding on each side.
func (m *MountingPlate) totalLength() float64 { return m.HoleSpacingLength + 2*m.EdgePadding }
func (m *MountingPlate) totalWidth() float64  { return m.HoleSpacingWidth + 2*m.EdgePadding }

// Create builds the plate. The base plate is centered at the origin with
// its faces at ±PlateThickness/2; the mount wall rises from the top face.
func (m *MountingPlate) Create() (sdf.SDF3, error) {
	plate, err := m.basePlate()
	if err != nil {
		return nil, err
	}

	mount, err := m.circularMount()
	if err != nil {
		return nil, err
	}

	return sdf.Union3D(plate, mount), nil
}

// basePlate builds the flat plate with screw holes, center cutout, and
// wire gap removed.
func (m *MountingPlate) basePlate() (sdf.SDF3, error) {
	plate, err := boxAt(0, 0, 0, m.totalLength(), m.totalWidth(), m.PlateThickness)
	if err != nil {
		return nil, err
	}

	// Through-holes are cut slightly taller than the plate so the boolean
	// is clean at both faces.
	cutHeight := m.PlateThickness + 2

	// Four screw holes at the spacing corners.
	halfL := m.HoleSpacingLength / 2
	halfW := m.HoleSpacingWidth / 2
	corners := [][2]float64{
		{halfL, halfW},
		{-halfL, halfW},
		{-halfL, -halfW},
		{halfL, -halfW},
	}
	for _, c := range corners {
		hole, err := cylinderFrom(c[0], c[1], -cutHeight/2, cutHeight, m.HoleDiameter/2)
		if err != nil {
			return nil, err
		}
		plate = sdf.Difference3D(plate, hole)
	}

	// Rectangular center cutout inset from the screw holes.
	cutoutLength := m.HoleSpacingLength - 2*m.CenterHolePadding
	cutoutWidth := m.HoleSpacingWidth - 2*m.CenterHolePadding
	cutout, err := boxAt(0, 0, 0, cutoutLength, cutoutWidth, cutHeight)
	if err != nil {
		return nil, err
	}
	plate = sdf.Difference3D(plate, cutout)

	// Wire gap through the bottom edge.
	gap, err := boxAt(0, -m.totalWidth()/2, 0, m.WireGapWidth, m.WireGapHeight*2, cutHeight)
	if err != nil {
		return nil, err
	}
	return sdf.Difference3D(plate, gap), nil
}

// circularMount builds the raised ring wall, trimmed to the plate outline
// and with the wire gap carried through it.
func (m *MountingPlate) circularMount() (sdf.SDF3, error) {
	top := m.PlateThickness / 2
	outerRadius := (m.CircleDiameter + 2*m.MountWallThickness) / 2
	innerRadius := (m.CircleDiameter + m.MountTolerance) / 2

	outer, err := cylinderFrom(0, 0, top, m.MountHeight, outerRadius)
	if err != nil {
		return nil, err
	}
	inner, err := cylinderFrom(0, 0, top-1, m.MountHeight+2, innerRadius)
	if err != nil {
		return nil, err
	}
	ring := sdf.Difference3D(outer, inner)

	// The ring diameter can exceed the plate, so trim it to the plate
	// outline.
	bounds, err := boxAt(0, 0, top+m.MountHeight/2, m.totalLength(), m.totalWidth(), m.MountHeight)
	if err != nil {
		return nil, err
	}
	ring = sdf.Intersect3D(bounds, ring)

	// Continue the wire gap through the mount wall.
	gap, err := boxAt(0, -outerRadius, top+m.MountHeight/2, m.WireGapWidth, m.WireGapHeight, m.MountHeight+2)
	if err != nil {
		return nil, err
	}
	return sdf.Difference3D(ring, gap), nil
}

func (m *MountingPlate) refs() paramRefs {
	return paramRefs{
		"holeSpacingLength":  &m.HoleSpacingLength,
		"holeSpacingWidth":   &m.HoleSpacingWidth,
		"holeDiameter":       &m.HoleDiameter,
		"edgePadding":        &m.EdgePadding,
		"plateThickness":     &m.PlateThickness,
		"centerHolePadding":  &m.CenterHolePadding,
		"wireGapWidth":       &m.WireGapWidth,
		"wireGapHeight":      &m.WireGapHeight,
		"circleDiameter":     &m.CircleDiameter,
		"mountWallThickness": &m.MountWallThickness,
		"mountHeight":        &m.MountHeight,
		"mountTolerance":     &m.MountTolerance,
	}
}

// Params returns the adjustable dimensions.
func (m *MountingPlate) Params() map[string]float64 { return paramValues(m.refs()) }

// SetParam overrides a single dimension by name.
func (m *MountingPlate) SetParam(name string, value float64) error {
	return setParam(m.refs(), name, value)
}
