package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateName_Valid verifies that typical model names pass validation,
// including single-character names and names with interior hyphens.
func TestValidateName_Valid(t *testing.T) {
	valid := []string{
		"box",
		"mounting-plate",
		"tablet-stand",
		"a",
		"part2",
		"V2-bracket",
	}
	for _, name := range valid {
		assert.NoError(t, ValidateName(name), "expected %q to be valid", name)
	}
}

// TestValidateName_Invalid verifies that names unsafe as path components
// are rejected: empty, leading/trailing hyphens, slashes, spaces, dots.
func TestValidateName_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"-box",
		"box-",
		"box/lid",
		"box lid",
		"box.stl",
		"../box",
	}
	for _, name := range invalid {
		assert.Error(t, ValidateName(name), "expected %q to be rejected", name)
	}
}

// TestValidateVersion verifies that versions start at 1 and that zero and
// negative values are rejected.
func TestValidateVersion(t *testing.T) {
	assert.NoError(t, ValidateVersion(1))
	assert.NoError(t, ValidateVersion(42))

	assert.Error(t, ValidateVersion(0))
	assert.Error(t, ValidateVersion(-1))
}

// TestCLIError_ErrorFormatting verifies both message-only and wrapped
// error rendering.
func TestCLIError_ErrorFormatting(t *testing.T) {
	plain := NewCLIError(ExitModelNotFound, "model \"box\" is not registered")
	assert.Equal(t, `model "box" is not registered`, plain.Error())

	underlying := errors.New("disk full")
	wrapped := WrapCLIError(ExitExportFailed, "failed to write STL", underlying)
	assert.Equal(t, "failed to write STL: disk full", wrapped.Error())
}

// TestCLIError_Unwrap verifies that errors.Is can see through a CLIError
// to the underlying cause, which the CLI relies on when translating
// failures into exit codes.
func TestCLIError_Unwrap(t *testing.T) {
	underlying := errors.New("boom")
	wrapped := WrapCLIError(ExitCreateFailed, "create failed", underlying)

	require.ErrorIs(t, wrapped, underlying)

	var cliErr *CLIError
	require.ErrorAs(t, error(wrapped), &cliErr)
	assert.Equal(t, ExitCreateFailed, cliErr.Code)
}
