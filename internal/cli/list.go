// Package cli — list.go implements the "clay list" command.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/clay/internal/config"
	"github.com/mmr-tortoise/clay/internal/export"
	"github.com/mmr-tortoise/clay/internal/model"
	"github.com/mmr-tortoise/clay/internal/registry"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	baseDir string // --base-dir: override the export tree root
}

// NewListCommand creates the "list" cobra command, which shows every
// registered model alongside its latest exported version.
func NewListCommand(reg *registry.Registry) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered models",
		Long: `List every registered model with its declared version, number of
adjustable parameters, and the latest version found in the export tree.

"Latest export" is reconstructed by scanning <baseDir>/<name>/ for
v<N> directories — there is no separate state file to get out of sync.`,
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(reg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.baseDir, "base-dir", "", "Export tree root (default from clay.yaml or \"models\")")

	return cmd
}

// listEntry is one row of the listing, used for both text and JSON output.
type listEntry struct {
	Name         string `json:"name"`
	Version      int    `json:"version"`
	ParamCount   int    `json:"paramCount"`
	LatestExport int    `json:"latestExport"` // 0 = never exported
}

// runList gathers one entry per registered model and prints the listing.
func runList(reg *registry.Registry, flags *listFlags) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	if flags.baseDir != "" {
		cfg.BaseDir = flags.baseDir
	}

	entries := make([]listEntry, 0, reg.Len())
	for _, name := range reg.Names() {
		m, _ := reg.New(name)

		entry := listEntry{Name: m.Name(), Version: m.Version()}
		if p, ok := m.(model.Parametric); ok {
			entry.ParamCount = len(p.Params())
		}

		latest, err := export.LatestVersion(cfg.BaseDir, name)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to scan export tree", err)
		}
		entry.LatestExport = latest

		entries = append(entries, entry)
	}

	printListEntries(entries)
	return nil
}

// printListEntries outputs the listing in text or JSON format.
func printListEntries(entries []listEntry) {
	if IsJSONOutput() {
		out := struct {
			Models []listEntry `json:"models"`
		}{Models: entries}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(entries) == 0 {
		fmt.Println("No models registered")
		return
	}

	// Tabwriter aligns columns automatically for clean table output.
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tPARAMS\tLATEST EXPORT")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\tv%d\t%d\t%s\n", e.Name, e.Version, e.ParamCount, formatLatest(e.LatestExport))
	}
	w.Flush()
}

// formatLatest renders a latest-export version for the listing table.
// Version 0 means the model has never been exported.
func formatLatest(latest int) string {
	if latest == 0 {
		return "-"
	}
	return fmt.Sprintf("v%d", latest)
}
