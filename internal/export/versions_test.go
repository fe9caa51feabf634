package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeVersionDirs creates <base>/<name>/v<N> directories for each given
// version, plus any extra entries the caller wants to plant.
func makeVersionDirs(t *testing.T, baseDir, name string, versions ...int) {
	t.Helper()
	for _, v := range versions {
		require.NoError(t, os.MkdirAll(VersionDir(baseDir, name, v), 0o755))
	}
}

// TestVersionDir verifies the directory naming convention for literal
// inputs: name "box", version 2 must land under box/v2.
func TestVersionDir(t *testing.T) {
	dir := VersionDir("models", "box", 2)
	assert.Equal(t, filepath.Join("models", "box", "v2"), dir)
}

// TestVersionDir_DisjointVersions verifies two versions of the same model
// map to different directories, so a new version never overwrites an old one.
func TestVersionDir_DisjointVersions(t *testing.T) {
	v1 := VersionDir("models", "box", 1)
	v2 := VersionDir("models", "box", 2)
	assert.NotEqual(t, v1, v2)
}

// TestListVersions_SortedAscending verifies scanning returns versions in
// ascending numeric order regardless of directory creation order.
func TestListVersions_SortedAscending(t *testing.T) {
	base := t.TempDir()
	makeVersionDirs(t, base, "box", 3, 1, 10, 2)

	versions, err := ListVersions(base, "box")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 10}, versions)
}

// TestListVersions_NeverExported verifies a model with no export directory
// yields an empty result without an error.
func TestListVersions_NeverExported(t *testing.T) {
	base := t.TempDir()

	versions, err := ListVersions(base, "ghost")
	require.NoError(t, err)
	assert.Empty(t, versions)
}

// TestListVersions_IgnoresStrayEntries verifies that files and directories
// not matching the v<N> convention are skipped during the scan.
func TestListVersions_IgnoresStrayEntries(t *testing.T) {
	base := t.TempDir()
	makeVersionDirs(t, base, "box", 1, 2)

	modelDir := filepath.Join(base, "box")
	// Stray entries: a loose file, a non-version directory, a malformed
	// version, and a v0 that violates "versions start at 1".
	require.NoError(t, os.WriteFile(filepath.Join(modelDir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(modelDir, "drafts"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(modelDir, "vNext"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(modelDir, "v0"), 0o755))

	versions, err := ListVersions(base, "box")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, versions)
}

// TestLatestVersion verifies both the exported and never-exported cases.
func TestLatestVersion(t *testing.T) {
	base := t.TempDir()
	makeVersionDirs(t, base, "box", 1, 4, 2)

	latest, err := LatestVersion(base, "box")
	require.NoError(t, err)
	assert.Equal(t, 4, latest)

	latest, err = LatestVersion(base, "ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, latest, "a never-exported model has latest version 0")
}

// TestNextVersion verifies version auto-derivation from the export tree:
// latest + 1, and 1 for a fresh model.
func TestNextVersion(t *testing.T) {
	base := t.TempDir()
	makeVersionDirs(t, base, "box", 1, 2)

	next, err := NextVersion(base, "box")
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	next, err = NextVersion(base, "ghost")
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}

// TestInspectArtifacts verifies artifact presence detection for a
// partially-complete export (mesh and one preview, no document).
func TestInspectArtifacts(t *testing.T) {
	base := t.TempDir()
	dir := VersionDir(base, "box", 2)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "box.stl"), []byte("solid"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "box_front.svg"), []byte("<svg/>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "box_top.svg"), []byte("<svg/>"), 0o644))

	arts, err := InspectArtifacts(base, "box", 2)
	require.NoError(t, err)

	assert.True(t, arts.STL)
	assert.False(t, arts.Doc, "document was not written in this fixture")
	assert.Equal(t, []string{"front", "top"}, arts.SVGViews)
	assert.Contains(t, arts.Dir, filepath.Join("box", "v2"))
}

// TestInspectArtifacts_MissingVersion verifies inspecting a version that
// was never exported returns an error rather than an empty result.
func TestInspectArtifacts_MissingVersion(t *testing.T) {
	base := t.TempDir()

	_, err := InspectArtifacts(base, "box", 9)
	assert.Error(t, err)
}
