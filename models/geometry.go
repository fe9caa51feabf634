// geometry.go holds the small construction helpers shared by the
// concrete models: positioned primitives and the parameter plumbing that
// backs the Parametric capability.
package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// translate moves a solid by the given offsets.
func translate(s sdf.SDF3, x, y, z float64) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z}))
}

// boxAt returns a box of the given size centered at (x, y, z).
func boxAt(x, y, z, sizeX, sizeY, sizeZ float64) (sdf.SDF3, error) {
	b, err := sdf.Box3D(v3.Vec{X: sizeX, Y: sizeY, Z: sizeZ}, 0)
	if err != nil {
		return nil, err
	}
	return translate(b, x, y, z), nil
}

// roundedBoxFrom returns a box with rounded edges spanning z0..z0+height,
// centered at (x, y) in the XY plane.
func roundedBoxFrom(x, y, z0, sizeX, sizeY, height, round float64) (sdf.SDF3, error) {
	b, err := sdf.Box3D(v3.Vec{X: sizeX, Y: sizeY, Z: height}, round)
	if err != nil {
		return nil, err
	}
	return translate(b, x, y, z0+height/2), nil
}

// roundedPlateFrom returns a box spanning z0..z0+height whose vertical
// edges are rounded with the given corner radius, centered at (x, y).
// Unlike roundedBoxFrom, the top and bottom faces stay sharp, so the
// corner radius may exceed half the height.
func roundedPlateFrom(x, y, z0, sizeX, sizeY, height, corner float64) (sdf.SDF3, error) {
	profile := sdf.Box2D(v2.Vec{X: sizeX, Y: sizeY}, corner)
	return translate(sdf.Extrude3D(profile, height), x, y, z0+height/2), nil
}

// cylinderFrom returns a cylinder of the given radius spanning
// z0..z0+height, centered at (x, y) in the XY plane.
func cylinderFrom(x, y, z0, height, radius float64) (sdf.SDF3, error) {
	c, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, err
	}
	return translate(c, x, y, z0+height/2), nil
}

// paramRefs maps parameter names to the fields that hold their values.
// Models hand a fresh map to paramValues/setParam so the Parametric
// methods stay one-liners.
type paramRefs map[string]*float64

// paramValues snapshots the current values behind the refs.
func paramValues(refs paramRefs) map[string]float64 {
	values := make(map[string]float64, len(refs))
	for name, ref := range refs {
		values[name] = *ref
	}
	return values
}

// setParam stores a value through the named ref. Unknown names report the
// valid set so override-file typos are easy to fix.
func setParam(refs paramRefs, name string, value float64) error {
	ref, ok := refs[name]
	if !ok {
		names := make([]string, 0, len(refs))
		for n := range refs {
			names = append(names, n)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown parameter %q (valid: %s)", name, strings.Join(names, ", "))
	}
	*ref = value
	return nil
}
