package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// View is a camera orientation for an SVG preview, expressed as rotation
// angles in degrees around the X, Y, and Z axes. The solid is rotated by
// these angles and then sectioned through its center to produce the 2D
// preview outline.
type View struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// DefaultMeshCells is the meshing resolution used when none is configured.
// 200 cells along the longest axis gives watertight prints for desktop-FDM
// sized parts without multi-minute render times.
const DefaultMeshCells = 200

// DefaultSVGCells is the 2D rendering resolution for SVG previews.
const DefaultSVGCells = 300

// DefaultViews returns the preview set used when none is configured:
// a single unrotated "front" view.
func DefaultViews() map[string]View {
	return map[string]View{
		"front": {0, 0, 0},
	}
}

// Exporter writes the artifact set for one model version. It satisfies the
// lifecycle Exporter interface.
//
// Description and Params are optional document metadata. The CLI populates
// them per model (from the Describable and Parametric capabilities) before
// running the lifecycle; the zero values simply omit the corresponding
// document sections.
type Exporter struct {
	// BaseDir is the root of the export tree (default "models").
	BaseDir string

	// MeshCells is the STL meshing resolution.
	MeshCells int

	// SVGCells is the SVG preview rendering resolution.
	SVGCells int

	// Views maps view names to their rotations. Every view produces one
	// <name>_<view>.svg artifact.
	Views map[string]View

	// Description is embedded in the markdown document when non-empty.
	Description string

	// Params is listed in the document's metadata section when non-empty.
	Params map[string]float64
}

// NewExporter creates an Exporter rooted at baseDir with default
// resolutions and views. An empty baseDir means "models".
func NewExporter(baseDir string) *Exporter {
	if baseDir == "" {
		baseDir = "models"
	}
	return &Exporter{
		BaseDir:   baseDir,
		MeshCells: DefaultMeshCells,
		SVGCells:  DefaultSVGCells,
		Views:     DefaultViews(),
	}
}

// Export writes the STL mesh, SVG previews, and markdown document for the
// given name and version, returning the version directory.
//
// Failure conditions are pass-through: an unwritable path, an unmeshable
// solid, or a render failure surfaces immediately, possibly leaving
// already-written artifacts behind.
func (e *Exporter) Export(s sdf.SDF3, name string, version int) (string, error) {
	dir := VersionDir(e.BaseDir, name, version)

	// MkdirAll creates the whole <base>/<name>/v<version> chain and is a
	// no-op for the parts that already exist.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create version directory %s: %w", dir, err)
	}

	// Step 1: STL mesh.
	stlPath := filepath.Join(dir, name+".stl")
	log.Debug("rendering STL", "path", stlPath, "cells", e.meshCells())
	render.ToSTL(s, stlPath, render.NewMarchingCubesOctree(e.meshCells()))
	if err := verifyArtifact(stlPath); err != nil {
		return "", fmt.Errorf("STL export failed for %s: %w", name, err)
	}

	// Step 2: SVG previews, one per view, in deterministic name order.
	viewNames := e.sortedViewNames()
	for _, viewName := range viewNames {
		svgPath := filepath.Join(dir, fmt.Sprintf("%s_%s.svg", name, viewName))
		log.Debug("rendering SVG preview", "path", svgPath, "view", viewName)

		outline := previewOutline(s, e.Views[viewName])
		render.ToSVG(outline, svgPath, render.NewMarchingSquaresQuadtree(e.svgCells()))
		if err := verifyArtifact(svgPath); err != nil {
			return "", fmt.Errorf("SVG export failed for view %q of %s: %w", viewName, name, err)
		}
	}

	// Step 3: markdown document.
	size := s.BoundingBox().Size()
	doc := renderDoc(docInfo{
		Name:        name,
		Version:     version,
		Description: e.Description,
		Generated:   time.Now(),
		Params:      e.Params,
		Views:       viewNames,
		Size:        size,
	})

	docPath := filepath.Join(dir, name+".md")
	if err := os.WriteFile(docPath, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("failed to write model document %s: %w", docPath, err)
	}

	log.Debug("export complete", "dir", dir, "views", len(viewNames))
	return dir, nil
}

func (e *Exporter) meshCells() int {
	if e.MeshCells > 0 {
		return e.MeshCells
	}
	return DefaultMeshCells
}

func (e *Exporter) svgCells() int {
	if e.SVGCells > 0 {
		return e.SVGCells
	}
	return DefaultSVGCells
}

// sortedViewNames returns the configured view names in sorted order so
// artifact generation and document sections are deterministic run to run.
func (e *Exporter) sortedViewNames() []string {
	views := e.Views
	if len(views) == 0 {
		views = DefaultViews()
		e.Views = views
	}
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// previewOutline produces the 2D section used as the preview for a view:
// the solid is rotated by the view angles, then sliced through the center
// of its bounding box perpendicular to the Z axis.
func previewOutline(s sdf.SDF3, v View) sdf.SDF2 {
	rotated := s
	if v.X != 0 || v.Y != 0 || v.Z != 0 {
		m := sdf.RotateZ(sdf.DtoR(v.Z)).Mul(sdf.RotateY(sdf.DtoR(v.Y))).Mul(sdf.RotateX(sdf.DtoR(v.X)))
		rotated = sdf.Transform3D(s, m)
	}
	center := rotated.BoundingBox().Center()
	return sdf.Slice2D(rotated, center, v3.Vec{X: 0, Y: 0, Z: 1})
}

// verifyArtifact checks that a render call actually produced a non-empty
// file. The CAD library's renderers report failures on their own logger
// rather than returning errors, so the filesystem is the source of truth
// for whether the artifact exists.
func verifyArtifact(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("artifact was not written: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("artifact %s is empty", path)
	}
	return nil
}
