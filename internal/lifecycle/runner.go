package lifecycle

import (
	"github.com/charmbracelet/log"
	"github.com/deadsy/sdfx/sdf"

	"github.com/mmr-tortoise/clay/internal/model"
)

// Viewer displays a solid interactively. The production implementation
// (internal/viewer) launches an external STL viewer; tests substitute a spy.
type Viewer interface {
	// Show displays the solid and blocks until the viewer is done with it,
	// so the user inspects the shape before export proceeds.
	Show(s sdf.SDF3) error
}

// Exporter persists a solid as the artifact set for one model version.
// The production implementation (internal/export) writes an STL mesh,
// SVG previews, and a markdown document.
type Exporter interface {
	// Export writes all artifacts for the given name and version and
	// returns the version directory they were written to.
	Export(s sdf.SDF3, name string, version int) (string, error)
}

// Runner orchestrates the model lifecycle. It owns no state beyond its
// two collaborators and can be reused across models within one process.
type Runner struct {
	// Viewer is invoked between create and export when display is enabled.
	Viewer Viewer

	// Exporter persists the created solid.
	Exporter Exporter
}

// NewRunner creates a Runner with the given collaborators.
func NewRunner(viewer Viewer, exporter Exporter) *Runner {
	return &Runner{Viewer: viewer, Exporter: exporter}
}

// Run executes the lifecycle for one model:
//
//  1. Validate the declared name and version.
//  2. Call Create exactly once. On error, return immediately — the viewer
//     is never shown and no artifacts are written.
//  3. If display is true, show the solid. A viewer failure aborts the run
//     before export.
//  4. Export the solid under the model's name and version.
//
// Returns the version directory the artifacts were written to.
func (r *Runner) Run(m model.Printable, display bool) (string, error) {
	name := m.Name()
	version := m.Version()

	if err := model.ValidateName(name); err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "model declares an invalid name", err)
	}
	if err := model.ValidateVersion(version); err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "model declares an invalid version", err)
	}

	log.Debug("creating solid", "model", name, "version", version)
	solid, err := m.Create()
	if err != nil {
		return "", model.WrapCLIError(model.ExitCreateFailed, "failed to create model "+name, err)
	}
	if solid == nil {
		return "", model.NewCLIError(model.ExitCreateFailed, "model "+name+" created a nil solid")
	}

	if display {
		log.Debug("displaying solid", "model", name)
		if err := r.Viewer.Show(solid); err != nil {
			return "", model.WrapCLIError(model.ExitViewerFailed, "failed to display model "+name, err)
		}
	}

	log.Debug("exporting artifacts", "model", name, "version", version)
	dir, err := r.Exporter.Export(solid, name, version)
	if err != nil {
		return "", model.WrapCLIError(model.ExitExportFailed, "failed to export model "+name, err)
	}

	return dir, nil
}
