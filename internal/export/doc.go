// Package export persists a created solid as the artifact set for one
// model version: an STL mesh, one SVG preview per configured view, and a
// markdown document describing the part.
//
// Artifacts live under <baseDir>/<name>/v<version>/. The directory naming
// convention is the only schema: everything the CLI knows about past
// builds is reconstructed by scanning this tree (see versions.go), so
// there is no index file to keep in sync.
//
// Export is not atomic. Artifacts are written mesh → previews → document,
// and a failure partway through leaves the earlier files in place. The
// clean command exists to remove a bad version directory.
//
// Meshing and rendering are delegated entirely to the CAD library; this
// package decides paths and document content, never geometry.
package export
