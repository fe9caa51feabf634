package models

import (
	"github.com/deadsy/sdfx/sdf"
)

// TreadmillCover replaces the plastic motor cover plate of a treadmill:
// a two-layer plate whose top layer overhangs the base by a lip, with
// five rimmed rectangular openings matching the original cover's vents.
// Each opening keeps a rim so a matching snap-in cover can rest on it.
type TreadmillCover struct {
	// Footprint of the original cover.
	Length float64
	Width  float64

	// BaseThickness is the lower layer; TotalThickness includes the
	// lipped top layer.
	BaseThickness  float64
	TotalThickness float64

	// Fit tolerances.
	HoleClearance float64
	EdgeClearance float64

	// LipExtension is how far the top layer overhangs the base on all
	// sides; BottomLip shrinks the overhang at the bottom edge.
	LipExtension float64
	BottomLip    float64

	// Rim left inside each opening for snap-in covers.
	RimThickness float64
	RimDepth     float64
}

// NewTreadmillCover returns the cover sized from the measured original.
func NewTreadmillCover() *TreadmillCover {
	return &TreadmillCover{
		Length:         156.35,
		Width:          77.63,
		BaseThickness:  3.0,
		TotalThickness: 6.0,
		HoleClearance:  0.2,
		EdgeClearance:  1.5,
		LipExtension:   1.5,
		BottomLip:      0.5,
		RimThickness:   1.0,
		RimDepth:       1.0,
	}
}

func (m *TreadmillCover) Name() string { return "treadmill-cover" }

func (m *TreadmillCover) Version() int { return 1 }

func (m *TreadmillCover) Description() string {
	return "Replacement treadmill motor cover plate with a lipped top " +
		"layer and five rimmed vent openings for snap-in covers."
}

// hole is one rectangular opening: outer size and center position, both
// derived from the measured fractions of the original cover.
type hole struct {
	width, height float64
	x, y          float64
}

// holes computes the five vent openings from the current dimensions.
// The bottom row extends downward into the lip overhang, stopping
// BottomLip short of its edge.
func (m *TreadmillCover) holes() []hole {
	bottomExt := m.LipExtension - m.BottomLip

	topW := 0.425*m.Length + m.HoleClearance
	topH := 0.248*m.Width + m.HoleClearance
	topY := m.Width/2 - m.EdgeClearance - (0.287*m.Width+m.HoleClearance)/2

	sideW := 0.269*m.Length + m.HoleClearance
	midW := 0.373*m.Length + m.HoleClearance
	bottomH := 0.208*m.Width + m.HoleClearance + bottomExt
	bottomY := -m.Width/2 + m.EdgeClearance + (0.214*m.Width+m.HoleClearance)/2 - bottomExt/2

	return []hole{
		{topW, topH, -m.Length/2 + m.EdgeClearance + topW/2, topY},
		{topW, topH, m.Length/2 - m.EdgeClearance - topW/2, topY},
		{sideW, bottomH, -m.Length/2 + m.EdgeClearance + sideW/2, bottomY},
		{midW, bottomH, 0, bottomY},
		{sideW, bottomH, m.Length/2 - m.EdgeClearance - sideW/2, bottomY},
	}
}

// Create builds the cover with its base at z=0.
func (m *TreadmillCover) Create() (sdf.SDF3, error) {
	base, err := roundedBoxFrom(0, 0, 0, m.Length, m.Width, m.BaseThickness, 0)
	if err != nil {
		return nil, err
	}

	// The top layer overhangs the base by the lip on all sides and spans
	// the remaining thickness.
	topHeight := m.TotalThickness - m.BaseThickness
	top, err := roundedBoxFrom(0, 0, m.BaseThickness,
		m.Length+2*m.LipExtension, m.Width+2*m.LipExtension, topHeight, 0)
	if err != nil {
		return nil, err
	}

	result := sdf.Union3D(base, top)

	// Each opening is cut twice: the outer rectangle stops RimDepth above
	// the bottom face, the inner rectangle (smaller by the rim) goes all
	// the way through.
	for _, h := range m.holes() {
		outer, err := boxAt(h.x, h.y, m.RimDepth+(m.TotalThickness-m.RimDepth)/2+0.5,
			h.width, h.height, m.TotalThickness-m.RimDepth+1)
		if err != nil {
			return nil, err
		}
		result = sdf.Difference3D(result, outer)

		inner, err := boxAt(h.x, h.y, m.TotalThickness/2,
			h.width-2*m.RimThickness, h.height-2*m.RimThickness, m.TotalThickness+2)
		if err != nil {
			return nil, err
		}
		result = sdf.Difference3D(result, inner)
	}

	return result, nil
}

func (m *TreadmillCover) refs() paramRefs {
	return paramRefs{
		"length":         &m.Length,
		"width":          &m.Width,
		"baseThickness":  &m.BaseThickness,
		"totalThickness": &m.TotalThickness,
		"holeClearance":  &m.HoleClearance,
		"edgeClearance":  &m.EdgeClearance,
		"lipExtension":   &m.LipExtension,
		"bottomLip":      &m.BottomLip,
		"rimThickness":   &m.RimThickness,
		"rimDepth":       &m.RimDepth,
	}
}

// Params returns the adjustable dimensions.
func (m *TreadmillCover) Params() map[string]float64 { return paramValues(m.refs()) }

// SetParam overrides a single dimension by name.
func (m *TreadmillCover) SetParam(name string, value float64) error {
	return setParam(m.refs(), name, value)
}
