// modeldoc.go assembles the markdown document written next to each
// exported mesh. The document is plain hand-assembled markdown so it reads
// well both on a forge and through `clay show`, which renders it in the
// terminal.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// docInfo carries everything the document needs. Keeping it a plain value
// (no geometry, the timestamp injected by the caller) makes the renderer
// trivially testable.
type docInfo struct {
	Name        string
	Version     int
	Description string
	Generated   time.Time
	Params      map[string]float64
	Views       []string
	Size        v3.Vec
}

// renderDoc produces the full markdown document for one exported version.
//
// Layout:
//
//	# <name> (v<version>)
//	## Description        (only when a description exists)
//	## Metadata           (generated timestamp, name, version, parameters)
//	## Generated Files    (links to the STL and SVG artifacts)
//	## Model Views        (one image section per view)
//	## Model Dimensions   (bounding box in mm)
func renderDoc(info docInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (v%d)\n\n", info.Name, info.Version)

	if info.Description != "" {
		fmt.Fprintf(&b, "## Description\n%s\n\n", info.Description)
	}

	b.WriteString("## Metadata\n\n")
	fmt.Fprintf(&b, "- **Generated:** %s\n", info.Generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- **Model Name:** %s\n", info.Name)
	fmt.Fprintf(&b, "- **Version:** %d\n", info.Version)
	for _, key := range sortedParamNames(info.Params) {
		fmt.Fprintf(&b, "- **%s:** %g\n", key, info.Params[key])
	}
	b.WriteString("\n")

	b.WriteString("## Generated Files\n\n")
	fmt.Fprintf(&b, "- STL File: [%s.stl](./%s.stl)\n", info.Name, info.Name)
	b.WriteString("- SVG Views:\n")
	for _, view := range info.Views {
		fmt.Fprintf(&b, "  - [%s_%s.svg](./%s_%s.svg)\n", info.Name, view, info.Name, view)
	}
	b.WriteString("\n")

	b.WriteString("## Model Views\n\n")
	for _, view := range info.Views {
		fmt.Fprintf(&b, "### %s View\n", titleCase(view))
		fmt.Fprintf(&b, "![](./%s_%s.svg)\n\n", info.Name, view)
	}

	b.WriteString("## Model Dimensions\n\n")
	b.WriteString("```\n")
	fmt.Fprintf(&b, "X: %.2f mm\n", info.Size.X)
	fmt.Fprintf(&b, "Y: %.2f mm\n", info.Size.Y)
	fmt.Fprintf(&b, "Z: %.2f mm\n", info.Size.Z)
	b.WriteString("```\n")

	return b.String()
}

// sortedParamNames returns parameter names in sorted order for stable
// document output.
func sortedParamNames(params map[string]float64) []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// titleCase upper-cases the first letter of a view name for use as a
// section heading ("front" → "Front"). View names are ASCII identifiers,
// so byte-level handling is sufficient.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
