// Package viewer implements the interactive display side effect of a
// model run.
//
// There is no in-process 3D view: the solid is meshed to a temporary STL
// file and handed to an external viewer process. By default that is the
// platform opener (xdg-open on Linux, open on macOS), which delegates to
// whatever STL viewer the desktop associates with the file; a dedicated
// viewer command can be configured instead.
//
// The viewer command blocks until it exits, matching the interactive
// feel of a scripted display call. Batch generation never gets here —
// the CLI suppresses display for --all builds and honors the
// CLAY_HIDE_DISPLAY environment variable.
package viewer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
)

// displayMeshCells is the meshing resolution for the throwaway display
// STL. Coarser than export resolution: the mesh exists only to be looked
// at, and a fast create→look cycle matters more than surface quality.
const displayMeshCells = 100

// StlViewer displays solids by meshing them to a temporary STL and
// launching an external viewer. It satisfies the lifecycle Viewer
// interface.
type StlViewer struct {
	// Command is the viewer executable. Empty selects the platform opener.
	Command string

	// Args are extra arguments placed before the STL path.
	Args []string
}

// NewStlViewer creates a viewer for the given command. An empty command
// selects the platform opener at Show time.
func NewStlViewer(command string, args ...string) *StlViewer {
	return &StlViewer{Command: command, Args: args}
}

// Show meshes the solid into a temporary STL file and runs the viewer on
// it. The temporary file is left in place until the process exits so the
// viewer can read it lazily; os.TempDir cleanup owns it afterwards.
func (v *StlViewer) Show(s sdf.SDF3) error {
	dir, err := os.MkdirTemp("", "clay-display-")
	if err != nil {
		return fmt.Errorf("failed to create display scratch directory: %w", err)
	}

	stlPath := filepath.Join(dir, "display.stl")
	log.Debug("meshing display STL", "path", stlPath, "cells", displayMeshCells)
	render.ToSTL(s, stlPath, render.NewMarchingCubesOctree(displayMeshCells))
	if _, err := os.Stat(stlPath); err != nil {
		return fmt.Errorf("display mesh was not written: %w", err)
	}

	command := v.Command
	if command == "" {
		command = platformOpener()
	}

	args := append(append([]string{}, v.Args...), stlPath)
	log.Debug("launching viewer", "command", command, "args", args)

	cmd := exec.Command(command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("viewer command %q failed: %w", command, err)
	}
	return nil
}

// platformOpener returns the OS-default command for opening a file with
// its associated application.
func platformOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}
