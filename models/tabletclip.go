package models

import (
	"github.com/deadsy/sdfx/sdf"
)

// TabletClip is a small U-shaped clip that slides over a stand lip to
// keep the tablet from being knocked out of the cradle. The slot is cut
// slightly wider than the lip it grips.
type TabletClip struct {
	Length    float64
	Height    float64
	Thickness float64

	// U-slot cut into the body.
	SlotWidth float64
	SlotDepth float64

	// FilletRadius rounds the vertical edges for printability.
	FilletRadius float64
}

// NewTabletClip returns the clip sized for the tablet stand's lip.
func NewTabletClip() *TabletClip {
	return &TabletClip{
		Length:       15.0,
		Height:       2.5,
		Thickness:    4.0,
		SlotWidth:    2.4,
		SlotDepth:    3.0,
		FilletRadius: 0.3,
	}
}

func (m *TabletClip) Name() string { return "tablet-clip" }

func (m *TabletClip) Version() int { return 1 }

func (m *TabletClip) Description() string {
	return "U-shaped clip that grips a stand lip to retain the tablet."
}

// Create builds the clip: a rounded block with the U-slot cut from one
// long face. The slot stops 1mm short of each end so the arms stay joined.
func (m *TabletClip) Create() (sdf.SDF3, error) {
	body, err := roundedBoxFrom(0, 0, 0, m.Length, m.Thickness, m.Height, m.FilletRadius)
	if err != nil {
		return nil, err
	}

	// The slot center sits SlotDepth in from the gripped face, so the cut
	// opens through the opposite face and leaves that wall intact.
	slot, err := boxAt(0, m.Thickness/2-m.SlotDepth, m.Height/2, m.Length-2, m.SlotWidth, m.Height+2)
	if err != nil {
		return nil, err
	}

	return sdf.Difference3D(body, slot), nil
}

func (m *TabletClip) refs() paramRefs {
	return paramRefs{
		"length":       &m.Length,
		"height":       &m.Height,
		"thickness":    &m.Thickness,
		"slotWidth":    &m.SlotWidth,
		"slotDepth":    &m.SlotDepth,
		"filletRadius": &m.FilletRadius,
	}
}

// Params returns the adjustable dimensions.
func (m *TabletClip) Params() map[string]float64 { return paramValues(m.refs()) }

// SetParam overrides a single dimension by name.
func (m *TabletClip) SetParam(name string, value float64) error {
	return setParam(m.refs(), name, value)
}
