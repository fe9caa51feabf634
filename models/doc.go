// Package models contains the concrete printable models known to the
// clay CLI.
//
// Each model is a struct with public dimension fields in millimetres,
// an explicit version, and a Create method that builds the solid from
// CAD-library primitives. Models are designed to be 3D printable in a
// single piece: no floating parts, wall thicknesses above 1.2mm, and
// fit tolerances in the 0.1-0.3mm range where parts mate with real
// objects.
//
// Version numbers are bumped by hand when a shape changes in a way worth
// keeping the previous export around for.
package models
