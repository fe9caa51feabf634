// Package cli — clean.go implements the "clay clean" command.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/clay/internal/config"
	"github.com/mmr-tortoise/clay/internal/export"
	"github.com/mmr-tortoise/clay/internal/model"
)

// cleanFlags holds the flag values for the clean command.
type cleanFlags struct {
	version int    // --version: which exported version to remove
	force   bool   // --force: skip the confirmation prompt
	baseDir string // --base-dir: override the export tree root
}

// NewCleanCommand creates the "clean" cobra command, which removes one
// exported version directory.
//
// Clean deliberately takes no registry: it operates on the export tree
// alone, so versions left behind by models that were since removed from
// the code can still be cleaned up.
func NewCleanCommand() *cobra.Command {
	flags := &cleanFlags{}

	cmd := &cobra.Command{
		Use:   "clean <model-name>",
		Short: "Remove an exported version directory",
		Long: `Remove one exported version directory and everything in it.

The version must be given explicitly — clean never guesses which
version to delete. Prompts for confirmation unless --force is set.

Examples:
  clay clean mounting-plate --version 1
  clay clean old-model --version 2 --force`,
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.version, "version", 0, "Exported version to remove (required)")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Skip confirmation prompt")
	cmd.Flags().StringVar(&flags.baseDir, "base-dir", "", "Export tree root (default from clay.yaml or \"models\")")
	// The flag was just declared above, so marking it cannot fail.
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

// runClean removes the requested version directory after confirmation.
func runClean(name string, flags *cleanFlags) error {
	if err := model.ValidateName(name); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid model name", err)
	}
	if err := model.ValidateVersion(flags.version); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid version", err)
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	if flags.baseDir != "" {
		cfg.BaseDir = flags.baseDir
	}

	// Step 1: The target must exist — cleaning a version that was never
	// exported is reported, not silently ignored.
	dir := export.VersionDir(cfg.BaseDir, name, flags.version)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return model.NewCLIError(model.ExitModelNotFound,
				fmt.Sprintf("no exported version at %s", dir))
		}
		return model.WrapCLIError(model.ExitGeneralError, "failed to stat version directory", err)
	}

	// Step 2: Confirm with the user unless --force.
	if !flags.force {
		if !confirm(fmt.Sprintf("Remove %s and all its artifacts?", dir)) {
			return model.NewCLIError(model.ExitUserCancelled, "cancelled by user")
		}
	}

	// Step 3: Remove the directory tree.
	if err := os.RemoveAll(dir); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to remove version directory", err)
	}

	// Step 4: Output the result.
	if IsJSONOutput() {
		out := struct {
			Name    string `json:"name"`
			Version int    `json:"version"`
			Removed string `json:"removed"`
		}{Name: name, Version: flags.version, Removed: dir}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
	} else {
		fmt.Printf("Removed %s\n", dir)
	}
	return nil
}

// confirm prompts the user with a yes/no question and returns their answer.
// Only an explicit "y" or "yes" counts as confirmation.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
