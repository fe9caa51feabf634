package models

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/clay/internal/model"
)

// TestRegistry_AllModels verifies every model registers under a valid
// name with a valid version, implements the optional capabilities, and
// creates a non-degenerate solid.
func TestRegistry_AllModels(t *testing.T) {
	r := NewRegistry()

	expected := []string{
		"massage-tip", "mounting-plate", "tablet-body",
		"tablet-clip", "tablet-stand", "treadmill-cover",
	}
	assert.Equal(t, expected, r.Names())

	for _, name := range r.Names() {
		m, ok := r.New(name)
		require.True(t, ok)

		require.NoError(t, model.ValidateName(m.Name()))
		require.NoError(t, model.ValidateVersion(m.Version()))

		_, parametric := m.(model.Parametric)
		assert.True(t, parametric, "%s should expose parameters", name)
		_, describable := m.(model.Describable)
		assert.True(t, describable, "%s should carry a description", name)

		solid, err := m.Create()
		require.NoError(t, err, "%s should create", name)
		require.NotNil(t, solid)

		size := solid.BoundingBox().Size()
		assert.Greater(t, size.X, 0.0, "%s has zero X extent", name)
		assert.Greater(t, size.Y, 0.0, "%s has zero Y extent", name)
		assert.Greater(t, size.Z, 0.0, "%s has zero Z extent", name)
	}
}

// TestMountingPlate_Dimensions verifies the plate footprint derives from
// screw spacing plus edge padding, and that the mount wall adds height
// above the plate.
func TestMountingPlate_Dimensions(t *testing.T) {
	m := NewMountingPlate()

	solid, err := m.Create()
	require.NoError(t, err)

	size := solid.BoundingBox().Size()
	assert.InDelta(t, 111.0, size.X, 0.5, "length = spacing + 2*padding")
	assert.InDelta(t, 71.0, size.Y, 0.5, "width = spacing + 2*padding")
	assert.InDelta(t, m.PlateThickness+m.MountHeight, size.Z, 0.5)
}

// TestMountingPlate_SetParam verifies an override flows into the created
// geometry.
func TestMountingPlate_SetParam(t *testing.T) {
	m := NewMountingPlate()
	require.NoError(t, m.SetParam("edgePadding", 10.0))

	solid, err := m.Create()
	require.NoError(t, err)

	size := solid.BoundingBox().Size()
	assert.InDelta(t, 121.0, size.X, 0.5, "length should grow with padding")
}

// TestMassageTip_Dimensions verifies the shaft-plus-ball height and that
// the widest point is the ball.
func TestMassageTip_Dimensions(t *testing.T) {
	m := NewMassageTip()

	solid, err := m.Create()
	require.NoError(t, err)

	size := solid.BoundingBox().Size()
	// Shaft is 51.57 tall; ball center sits at 51.57 - 10 + 20, so the
	// top of the ball reaches 81.57.
	assert.InDelta(t, 81.57, size.Z, 0.5)
	assert.InDelta(t, m.BallDiameter, size.X, 0.5, "ball is the widest feature")
}

// TestTreadmillCover_LipExtendsFootprint verifies the top layer's lip
// widens the bounding box beyond the base footprint.
func TestTreadmillCover_LipExtendsFootprint(t *testing.T) {
	m := NewTreadmillCover()

	solid, err := m.Create()
	require.NoError(t, err)

	size := solid.BoundingBox().Size()
	assert.InDelta(t, m.Length+2*m.LipExtension, size.X, 0.5)
	assert.InDelta(t, m.Width+2*m.LipExtension, size.Y, 0.5)
	assert.InDelta(t, m.TotalThickness, size.Z, 0.5)
}

// TestTabletStand_TotalHeight verifies the stand stacks base, spacer,
// cradle plate, and lips.
func TestTabletStand_TotalHeight(t *testing.T) {
	m := NewTabletStand()

	solid, err := m.Create()
	require.NoError(t, err)

	wantHeight := m.BaseHeight + m.SpacerHeight + m.WallThickness + m.LipHeight
	size := solid.BoundingBox().Size()
	assert.InDelta(t, wantHeight, size.Z, 0.5)
	assert.InDelta(t, m.mountWidth(), size.X, 1.0, "cradle is the widest feature")
}

// TestTabletClip_SlotCut verifies the U-slot: empty space at the slot
// center, solid material in the wall the slot does not reach.
func TestTabletClip_SlotCut(t *testing.T) {
	m := NewTabletClip()

	solid, err := m.Create()
	require.NoError(t, err)

	size := solid.BoundingBox().Size()
	assert.InDelta(t, m.Length, size.X, 0.5)
	assert.InDelta(t, m.Thickness, size.Y, 0.5)
	assert.InDelta(t, m.Height, size.Z, 0.5)

	// Inside the slot the distance field is positive (empty space).
	slotCenter := v3.Vec{X: 0, Y: m.Thickness/2 - m.SlotDepth, Z: m.Height / 2}
	assert.Greater(t, solid.Evaluate(slotCenter), 0.0, "slot should be empty")

	// The wall opposite the opening stays solid.
	wall := v3.Vec{X: 0, Y: m.Thickness/2 - 0.3, Z: m.Height / 2}
	assert.Less(t, solid.Evaluate(wall), 0.0, "gripping wall should be solid")
}

// TestTabletBody_Dimensions verifies the reference slab footprint and
// that the camera bump raises the total thickness.
func TestTabletBody_Dimensions(t *testing.T) {
	m := NewTabletBody()

	solid, err := m.Create()
	require.NoError(t, err)

	size := solid.BoundingBox().Size()
	assert.InDelta(t, m.Width, size.X, 0.5)
	assert.InDelta(t, m.Length, size.Y, 0.5)
	assert.InDelta(t, m.Thickness+cameraBumpHeight, size.Z, 0.5)
}

// TestTabletClip_FitsStandLip verifies the clip's slot is cut wider than
// the stand lip it grips.
func TestTabletClip_FitsStandLip(t *testing.T) {
	clip := NewTabletClip()
	stand := NewTabletStand()

	lipThickness := stand.WallThickness + stand.GripGap
	assert.Greater(t, clip.SlotWidth, lipThickness)
}

// TestSetParam_Unknown verifies typoed parameter names are rejected with
// the valid set in the message.
func TestSetParam_Unknown(t *testing.T) {
	m := NewTabletStand()

	err := m.SetParam("basewidth", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseWidth")
}

// TestParams_ReturnsCopy verifies mutating the returned map does not
// affect the model.
func TestParams_ReturnsCopy(t *testing.T) {
	m := NewMountingPlate()

	params := m.Params()
	params["plateThickness"] = 99

	assert.Equal(t, 2.5, m.PlateThickness)
	assert.Equal(t, 2.5, m.Params()["plateThickness"])
}
