package params

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModel implements Printable with an optional parameter set.
type stubModel struct {
	name   string
	params map[string]float64
}

func (m *stubModel) Name() string { return m.name }
func (m *stubModel) Version() int { return 1 }
func (m *stubModel) Create() (sdf.SDF3, error) { return nil, nil }
func (m *stubModel) Params() map[string]float64 { return m.params }

func (m *stubModel) SetParam(name string, value float64) error {
	if _, ok := m.params[name]; !ok {
		return fmt.Errorf("unknown parameter %q", name)
	}
	m.params[name] = value
	return nil
}

// plainModel implements Printable without the Parametric capability.
type plainModel struct{}

func (plainModel) Name() string { return "plain" }
func (plainModel) Version() int { return 1 }
func (plainModel) Create() (sdf.SDF3, error) { return nil, nil }

// TestParse_WithCommentsAndTrailingCommas verifies JSONC niceties are
// accepted.
func TestParse_WithCommentsAndTrailingCommas(t *testing.T) {
	src := []byte(`{
		// widen the plate for the new bracket
		"mounting-plate": {
			"width": 50,
			"thickness": 5.5, // extra stiffness
		},
	}`)

	overrides, err := Parse(src)
	require.NoError(t, err)

	require.Contains(t, overrides, "mounting-plate")
	assert.Equal(t, 50.0, overrides["mounting-plate"]["width"])
	assert.Equal(t, 5.5, overrides["mounting-plate"]["thickness"])
}

// TestParse_NonNumericValue verifies values other than numbers are
// rejected at parse time.
func TestParse_NonNumericValue(t *testing.T) {
	_, err := Parse([]byte(`{"box": {"width": "wide"}}`))
	assert.Error(t, err)
}

// TestLoadFile verifies the read-then-parse path against a real file.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"box": {"width": 12}}`), 0o644))

	overrides, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, overrides["box"]["width"])
}

// TestLoadFile_Missing verifies a missing file is an error, since the user
// named it explicitly with --params.
func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.jsonc"))
	assert.Error(t, err)
}

// TestApply_SetsMatchingModel verifies overrides reach the model's
// parameters while other models' entries are ignored.
func TestApply_SetsMatchingModel(t *testing.T) {
	m := &stubModel{name: "box", params: map[string]float64{"width": 30, "height": 10}}
	overrides := Overrides{
		"box":   {"width": 42},
		"other": {"width": 99},
	}

	require.NoError(t, overrides.Apply(m))
	assert.Equal(t, 42.0, m.params["width"])
	assert.Equal(t, 10.0, m.params["height"], "untouched parameters keep their values")
}

// TestApply_UnknownParameter verifies a typo in a parameter name surfaces
// as an error instead of being dropped.
func TestApply_UnknownParameter(t *testing.T) {
	m := &stubModel{name: "box", params: map[string]float64{"width": 30}}
	overrides := Overrides{"box": {"widht": 42}}

	err := overrides.Apply(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widht")
}

// TestApply_NonParametricModel verifies that overriding a model without
// parameters is an error rather than a silent no-op.
func TestApply_NonParametricModel(t *testing.T) {
	overrides := Overrides{"plain": {"width": 1}}
	assert.Error(t, overrides.Apply(plainModel{}))
}

// TestApply_AbsentModel verifies models not mentioned in the file are
// untouched.
func TestApply_AbsentModel(t *testing.T) {
	overrides := Overrides{"other": {"width": 1}}
	assert.NoError(t, overrides.Apply(plainModel{}))
}
