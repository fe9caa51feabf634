// versions.go reconstructs version history by scanning the export tree.
// There is no index file: the v<N> directory names under <base>/<name>/
// are the authoritative record of which versions have been exported.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// VersionDir returns the directory that holds all artifacts for one
// version of a model: <baseDir>/<name>/v<version>.
func VersionDir(baseDir, name string, version int) string {
	return filepath.Join(baseDir, name, fmt.Sprintf("v%d", version))
}

// ListVersions returns the exported versions of a model in ascending
// order, determined by scanning <baseDir>/<name>/ for v<N> directories.
//
// A model with no export directory yields an empty slice, not an error —
// "never exported" is an ordinary state, not a failure. Entries that are
// not directories or don't match the v<N> convention are ignored.
func ListVersions(baseDir, name string) ([]int, error) {
	entries, err := os.ReadDir(filepath.Join(baseDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan versions of %s: %w", name, err)
	}

	var versions []int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		version, ok := parseVersionDir(entry.Name())
		if !ok {
			continue
		}
		versions = append(versions, version)
	}

	sort.Ints(versions)
	return versions, nil
}

// LatestVersion returns the highest exported version of a model, or 0 if
// the model has never been exported.
func LatestVersion(baseDir, name string) (int, error) {
	versions, err := ListVersions(baseDir, name)
	if err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		return 0, nil
	}
	return versions[len(versions)-1], nil
}

// NextVersion returns the version number a new export would get if the
// author derives versions from the existing output directories:
// latest + 1, or 1 for a never-exported model.
func NextVersion(baseDir, name string) (int, error) {
	latest, err := LatestVersion(baseDir, name)
	if err != nil {
		return 0, err
	}
	return latest + 1, nil
}

// parseVersionDir extracts the version number from a v<N> directory name.
// Returns false for anything that doesn't match the convention exactly,
// including "v0", "v-1", and "v01x".
func parseVersionDir(dirName string) (int, bool) {
	numStr, found := strings.CutPrefix(dirName, "v")
	if !found {
		return 0, false
	}
	version, err := strconv.Atoi(numStr)
	if err != nil || version < 1 {
		return 0, false
	}
	return version, true
}

// Artifacts describes which artifact files are present in one exported
// version directory. Used by the versions command to show at a glance
// whether an export completed (export is not atomic, so a directory can
// hold a mesh without its document).
type Artifacts struct {
	// Dir is the version directory that was inspected.
	Dir string

	// STL reports whether the mesh file exists.
	STL bool

	// Doc reports whether the markdown document exists.
	Doc bool

	// SVGViews lists the view names that have an SVG preview, sorted.
	SVGViews []string
}

// InspectArtifacts reports which artifacts exist for one exported version.
func InspectArtifacts(baseDir, name string, version int) (Artifacts, error) {
	dir := VersionDir(baseDir, name, version)
	arts := Artifacts{Dir: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return arts, fmt.Errorf("failed to inspect %s: %w", dir, err)
	}

	svgPrefix := name + "_"
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch {
		case entry.Name() == name+".stl":
			arts.STL = true
		case entry.Name() == name+".md":
			arts.Doc = true
		case strings.HasPrefix(entry.Name(), svgPrefix) && strings.HasSuffix(entry.Name(), ".svg"):
			view := strings.TrimSuffix(strings.TrimPrefix(entry.Name(), svgPrefix), ".svg")
			arts.SVGViews = append(arts.SVGViews, view)
		}
	}

	sort.Strings(arts.SVGViews)
	return arts, nil
}
