// Package model defines the domain types for the clay CLI.
//
// Key design decision: there is no state file. Everything the CLI reports
// about past builds is reconstructed at runtime by scanning the export
// directory tree, so the types here are transient in-process values.
package model

import (
	"fmt"
	"regexp"

	"github.com/deadsy/sdfx/sdf"
)

// Printable is the contract every concrete model must satisfy.
//
// It replaces an abstract-base-class design with a capability set: the
// lifecycle runner accepts any value implementing these three methods and
// never inspects the solid it produces.
type Printable interface {
	// Name returns the stable identifier for the model. It namespaces all
	// exported artifacts, so it must satisfy ValidateName.
	Name() string

	// Version returns the shape generation of the model. Authors bump it
	// by hand when the shape logic changes in a way worth keeping the old
	// artifacts around for. Must be >= 1; there is no default.
	Version() int

	// Create builds and returns the solid, ready for display and export.
	// The model is expected (by convention, not enforced) to be printable
	// in a single piece with sane wall thickness and tolerances.
	Create() (sdf.SDF3, error)
}

// Parametric is an optional capability for models whose dimensions are
// adjustable at build time. Models expose their public parameters as a
// flat name → value map in millimetres (or whatever unit the model uses).
//
// The build command uses this to apply --params overrides before Create.
type Parametric interface {
	// Params returns the current parameter values. The returned map is a
	// copy; mutating it does not affect the model.
	Params() map[string]float64

	// SetParam overrides a single parameter. Unknown parameter names are
	// an error so typos in override files surface instead of being
	// silently ignored.
	SetParam(name string, value float64) error
}

// Describable is an optional capability for models that carry a prose
// description. The exporter embeds it in the generated markdown document.
type Describable interface {
	// Description returns a short human-readable description of the part.
	Description() string
}

// nameRegex validates model names: alphanumeric + hyphens only,
// must start and end with alphanumeric.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

// ValidateName checks if the given name is a valid model name.
// Valid names contain only alphanumeric characters and hyphens,
// and must start/end with an alphanumeric character. The rule keeps
// names safe to use verbatim as directory and file name components.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("model name must not be empty")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid model name %q: must contain only alphanumeric characters and hyphens, and start/end with alphanumeric", name)
	}
	return nil
}

// ValidateVersion checks that a model version is an explicit positive
// integer. Versions start at 1; zero or negative values almost always
// mean the author forgot to set one.
func ValidateVersion(version int) error {
	if version < 1 {
		return fmt.Errorf("invalid model version %d: versions start at 1", version)
	}
	return nil
}

// ExitCode defines the CLI exit codes. These codes allow scripts driving
// batch generation loops to programmatically determine the outcome of a
// command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitModelNotFound indicates the named model is not registered,
	// or has no exported artifacts where some were expected.
	ExitModelNotFound ExitCode = 2

	// ExitCreateFailed indicates the model's Create call returned an error.
	ExitCreateFailed ExitCode = 3

	// ExitExportFailed indicates artifact generation failed (meshing,
	// rendering, or a filesystem write).
	ExitExportFailed ExitCode = 4

	// ExitViewerFailed indicates the interactive viewer could not be
	// launched.
	ExitViewerFailed ExitCode = 5

	// ExitConfigError indicates clay.yaml or a --params file could not
	// be read or parsed.
	ExitConfigError ExitCode = 6

	// ExitUserCancelled indicates the user cancelled an interactive prompt.
	ExitUserCancelled ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
