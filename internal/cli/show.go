// Package cli — show.go implements the "clay show" command.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/clay/internal/config"
	"github.com/mmr-tortoise/clay/internal/export"
	"github.com/mmr-tortoise/clay/internal/model"
	"github.com/mmr-tortoise/clay/internal/registry"
)

// showFlags holds the flag values for the show command.
type showFlags struct {
	version int    // --version: which exported version to show (0 = latest)
	baseDir string // --base-dir: override the export tree root
}

// NewShowCommand creates the "show" cobra command, which renders the
// markdown document of an exported model version in the terminal.
func NewShowCommand(reg *registry.Registry) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show <model-name>",
		Short: "Render an exported model document",
		Long: `Render the markdown document of an exported model version in the
terminal. Defaults to the latest exported version; pick an older one
with --version.

Examples:
  clay show mounting-plate
  clay show massage-tip --version 1`,
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(reg, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.version, "version", 0, "Exported version to show (default latest)")
	cmd.Flags().StringVar(&flags.baseDir, "base-dir", "", "Export tree root (default from clay.yaml or \"models\")")

	return cmd
}

// runShow locates the document for the requested version and renders it.
func runShow(reg *registry.Registry, name string, flags *showFlags) error {
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

	// Step 1: Resolve the version — explicit flag or latest export.
	version := flags.version
	if version == 0 {
		version, err = export.LatestVersion(cfg.BaseDir, name)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to scan export tree", err)
		}
		if version == 0 {
			return model.NewCLIError(model.ExitModelNotFound,
				fmt.Sprintf("model %q has no exported versions (run clay build %s)", name, name))
		}
	}
	if err := model.ValidateVersion(version); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid version", err)
	}

	// Step 2: Read the document.
	docPath := filepath.Join(export.VersionDir(cfg.BaseDir, name, version), name+".md")
	markdown, err := os.ReadFile(docPath)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewCLIError(model.ExitModelNotFound,
				fmt.Sprintf("no document at %s", docPath))
		}
		return model.WrapCLIError(model.ExitGeneralError, "failed to read document", err)
	}

	// Step 3: Output. JSON mode carries the raw markdown for tooling;
	// text mode renders it with terminal styling.
	if IsJSONOutput() {
		out := struct {
			Name     string `json:"name"`
			Version  int    `json:"version"`
			Path     string `json:"path"`
			Markdown string `json:"markdown"`
		}{Name: name, Version: version, Path: docPath, Markdown: string(markdown)}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	rendered, err := renderMarkdown(string(markdown))
	if err != nil {
		// Styled rendering is cosmetic; fall back to the raw document
		// rather than failing the command.
		fmt.Println(string(markdown))
		return nil
	}
	fmt.Print(rendered)
	return nil
}

// renderMarkdown renders a markdown document with terminal styling.
func renderMarkdown(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
