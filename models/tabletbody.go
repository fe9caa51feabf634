package models

import (
	"github.com/deadsy/sdfx/sdf"
)

// TabletBody is a reference body of the 12.9" tablet the stand and clip
// are sized around: the slab with rounded corners, a raised screen face,
// and the corner camera bump. Printing one lets fit be checked without
// risking the real device.
type TabletBody struct {
	Length       float64
	Width        float64
	Thickness    float64
	CornerRadius float64

	// ScreenBezel is the border between the body edge and the screen face.
	ScreenBezel float64
}

// NewTabletBody returns the reference body with the measured dimensions.
func NewTabletBody() *TabletBody {
	return &TabletBody{
		Length:       280.6,
		Width:        214.9,
		Thickness:    6.4,
		CornerRadius: 7.0,
		ScreenBezel:  8.0,
	}
}

func (m *TabletBody) Name() string { return "tablet-body" }

func (m *TabletBody) Version() int { return 1 }

func (m *TabletBody) Description() string {
	return "Reference body of the 12.9\" tablet, for checking stand and " +
		"clip fit without the real device."
}

// camera bump footprint and height, approximated from the device.
const (
	cameraBumpWidth  = 25.0
	cameraBumpLength = 28.0
	cameraBumpHeight = 1.5
	cameraBumpInset  = 20.0
)

// Create builds the body with the back face at z=0, screen up.
func (m *TabletBody) Create() (sdf.SDF3, error) {
	body, err := roundedPlateFrom(0, 0, 0, m.Width, m.Length, m.Thickness, m.CornerRadius)
	if err != nil {
		return nil, err
	}

	// Raised screen face inset by the bezel, overlapping the body so the
	// union is clean.
	screen, err := boxAt(0, 0, m.Thickness,
		m.Width-2*m.ScreenBezel, m.Length-2*m.ScreenBezel, 0.2)
	if err != nil {
		return nil, err
	}

	// Camera bump in the top-left corner of the back.
	bump, err := roundedPlateFrom(-m.Width/2+cameraBumpInset, m.Length/2-cameraBumpInset,
		m.Thickness, cameraBumpWidth, cameraBumpLength, cameraBumpHeight, 3.0)
	if err != nil {
		return nil, err
	}

	return sdf.Union3D(body, screen, bump), nil
}

func (m *TabletBody) refs() paramRefs {
	return paramRefs{
		"length":       &m.Length,
		"width":        &m.Width,
		"thickness":    &m.Thickness,
		"cornerRadius": &m.CornerRadius,
		"screenBezel":  &m.ScreenBezel,
	}
}

// Params returns the adjustable dimensions.
func (m *TabletBody) Params() map[string]float64 { return paramValues(m.refs()) }

// SetParam overrides a single dimension by name.
func (m *TabletBody) SetParam(name string, value float64) error {
	return setParam(m.refs(), name, value)
}
