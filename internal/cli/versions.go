// Package cli — versions.go implements the "clay versions" command.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/clay/internal/config"
	"github.com/mmr-tortoise/clay/internal/export"
	"github.com/mmr-tortoise/clay/internal/model"
	"github.com/mmr-tortoise/clay/internal/registry"
)

// versionsFlags holds the flag values for the versions command.
type versionsFlags struct {
	baseDir string // --base-dir: override the export tree root
}

// NewVersionsCommand creates the "versions" cobra command, which shows
// the export history of one model.
func NewVersionsCommand(reg *registry.Registry) *cobra.Command {
	flags := &versionsFlags{}

	cmd := &cobra.Command{
		Use:   "versions <model-name>",
		Short: "Show the exported versions of a model",
		Long: `Show every exported version of a model and which artifacts each
version directory holds. Export is not atomic, so an interrupted run can
leave a version with a mesh but no document — this command makes such
gaps visible.`,
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersions(reg, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.baseDir, "base-dir", "", "Export tree root (default from clay.yaml or \"models\")")

	return cmd
}

// versionEntry is one exported version with its artifact inventory.
type versionEntry struct {
	Version  int      `json:"version"`
	Dir      string   `json:"dir"`
	STL      bool     `json:"stl"`
	Doc      bool     `json:"doc"`
	SVGViews []string `json:"svgViews"`
}

// runVersions scans the export tree for one model and prints its history.
func runVersions(reg *registry.Registry, name string, flags *versionsFlags) error {
	if _, ok := reg.New(name); !ok {
		return model.NewCLIError(model.ExitModelNotFound,
			fmt.Sprintf("model %q is not registered (see clay list)", name))
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	if flags.baseDir != "" {
		cfg.BaseDir = flags.baseDir
	}

	versions, err := export.ListVersions(cfg.BaseDir, name)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to scan export tree", err)
	}

	entries := make([]versionEntry, 0, len(versions))
	for _, version := range versions {
		arts, err := export.InspectArtifacts(cfg.BaseDir, name, version)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to inspect artifacts", err)
		}
		entries = append(entries, versionEntry{
			Version:  version,
			Dir:      arts.Dir,
			STL:      arts.STL,
			Doc:      arts.Doc,
			SVGViews: arts.SVGViews,
		})
	}

	printVersionEntries(name, entries)
	return nil
}

// printVersionEntries outputs the version history in text or JSON format.
func printVersionEntries(name string, entries []versionEntry) {
	if IsJSONOutput() {
		out := struct {
			Name     string         `json:"name"`
			Versions []versionEntry `json:"versions"`
		}{Name: name, Versions: entries}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(entries) == 0 {
		fmt.Printf("No exported versions of %s\n", name)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tSTL\tDOC\tVIEWS\tDIR")
	for _, e := range entries {
		fmt.Fprintf(w, "v%d\t%s\t%s\t%s\t%s\n",
			e.Version, checkmark(e.STL), checkmark(e.Doc), formatViews(e.SVGViews), e.Dir)
	}
	w.Flush()
}

// checkmark renders artifact presence for the text table.
func checkmark(present bool) string {
	if present {
		return "yes"
	}
	return "missing"
}

// formatViews renders the SVG view list for the text table.
func formatViews(views []string) string {
	if len(views) == 0 {
		return "-"
	}
	return strings.Join(views, ",")
}
