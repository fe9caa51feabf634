// Package cli — build.go implements the "clay build" command.
//
// The build command is the primary user-facing operation. It runs the
// model lifecycle (create → optionally display → export) for one
// registered model, or for every registered model with --all.
//
// Orchestration steps:
//  1. Load configuration (clay.yaml or defaults)
//  2. Resolve the target model(s) from the registry
//  3. Load and apply --params overrides
//  4. Decide whether interactive display is enabled
//  5. Run the lifecycle per model
//  6. Output results (text or JSON)
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/clay/internal/config"
	"github.com/mmr-tortoise/clay/internal/export"
	"github.com/mmr-tortoise/clay/internal/lifecycle"
	"github.com/mmr-tortoise/clay/internal/model"
	"github.com/mmr-tortoise/clay/internal/params"
	"github.com/mmr-tortoise/clay/internal/registry"
	"github.com/mmr-tortoise/clay/internal/viewer"
)

// hideDisplayEnv suppresses interactive display when set to any non-empty
// value. It exists for headless batch loops that drive clay from scripts
// and can't pass --no-display everywhere.
const hideDisplayEnv = "CLAY_HIDE_DISPLAY"

// buildFlags holds the flag values for the build command.
// These are bound to cobra flags in NewBuildCommand.
type buildFlags struct {
	all        bool   // --all: build every registered model
	noDisplay  bool   // --no-display: skip the interactive viewer
	paramsFile string // --params: JSONC parameter override file
	baseDir    string // --base-dir: override the export tree root
}

// NewBuildCommand creates the "build" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewBuildCommand(reg *registry.Registry) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [model-name]",
		Short: "Create a model and export its artifacts",
		Long: `Create a model's solid and export it as an STL mesh, SVG previews,
and a markdown document under <baseDir>/<name>/v<version>/.

Unless display is suppressed, the solid is first opened in an external
STL viewer. Display is suppressed by --no-display, by the
CLAY_HIDE_DISPLAY environment variable, and always for --all builds.

Examples:
  clay build mounting-plate
  clay build mounting-plate --params overrides.jsonc
  clay build --all
  CLAY_HIDE_DISPLAY=1 clay build tablet-stand`,

		// Either one model name or --all, never both and never neither.
		Args: cobra.MaximumNArgs(1),

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.all == (len(args) == 1) {
				return model.NewCLIError(model.ExitGeneralError,
					"specify exactly one model name or --all")
			}
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return runBuild(reg, target, flags)
		},
	}

	// Register command-specific flags.
	cmd.Flags().BoolVar(&flags.all, "all", false, "Build every registered model")
	cmd.Flags().BoolVar(&flags.noDisplay, "no-display", false, "Skip the interactive viewer")
	cmd.Flags().StringVar(&flags.paramsFile, "params", "", "JSONC parameter override file")
	cmd.Flags().StringVar(&flags.baseDir, "base-dir", "", "Export tree root (default from clay.yaml or \"models\")")

	return cmd
}

// buildResult is the outcome of one model build, used for both text and
// JSON output.
type buildResult struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
	Dir     string `json:"dir"`
}

// runBuild is the main orchestration function for the build command.
func runBuild(reg *registry.Registry, target string, flags *buildFlags) error {
	// Step 1: Load configuration; flag overrides beat the file.
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	if flags.baseDir != "" {
		cfg.BaseDir = flags.baseDir
	}

	// Step 2: Resolve the target model names.
	var names []string
	if flags.all {
		names = reg.Names()
	} else {
		if _, ok := reg.New(target); !ok {
			return model.NewCLIError(model.ExitModelNotFound,
				fmt.Sprintf("model %q is not registered (see clay list)", target))
		}
		names = []string{target}
	}

	// Step 3: Load parameter overrides, if any.
	var overrides params.Overrides
	if flags.paramsFile != "" {
		overrides, err = params.LoadFile(flags.paramsFile)
		if err != nil {
			return err
		}
	}

	// Step 4: Decide on interactive display. --all is a batch operation,
	// so it never pops viewer windows.
	display := displayEnabled(flags.noDisplay, flags.all)

	// Step 5: Run the lifecycle for each model. Builds are sequential by
	// design — each model run is an independent create/export pass, and
	// the viewer is interactive.
	results := make([]buildResult, 0, len(names))
	for _, name := range names {
		m, _ := reg.New(name)

		if err := overrides.Apply(m); err != nil {
			return model.WrapCLIError(model.ExitConfigError, "parameter override failed", err)
		}

		exporter := &export.Exporter{
			BaseDir:   cfg.BaseDir,
			MeshCells: cfg.MeshCells,
			SVGCells:  cfg.SVGCells,
			Views:     cfg.Views,
		}
		// Optional capabilities enrich the markdown document.
		if d, ok := m.(model.Describable); ok {
			exporter.Description = d.Description()
		}
		if p, ok := m.(model.Parametric); ok {
			exporter.Params = p.Params()
		}

		runner := lifecycle.NewRunner(viewer.NewStlViewer(cfg.Viewer), exporter)
		dir, err := runner.Run(m, display)
		if err != nil {
			return err
		}

		results = append(results, buildResult{Name: m.Name(), Version: m.Version(), Dir: dir})
	}

	// Step 6: Output results.
	printBuildResults(results)
	return nil
}

// displayEnabled decides whether the interactive viewer runs for this
// invocation. The lifecycle itself takes an explicit bool; this is the
// single place where flags and environment are folded into it.
func displayEnabled(noDisplayFlag, all bool) bool {
	if noDisplayFlag || all {
		return false
	}
	return os.Getenv(hideDisplayEnv) == ""
}

// printBuildResults outputs the build results in text or JSON format.
func printBuildResults(results []buildResult) {
	if IsJSONOutput() {
		out := struct {
			Models []buildResult `json:"models"`
		}{Models: results}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	for _, r := range results {
		fmt.Printf("Exported %s v%d to %s\n", r.Name, r.Version, r.Dir)
	}
}
