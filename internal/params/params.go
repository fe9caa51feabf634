// Package params loads parameter-override files for builds.
//
// An override file maps model names to parameter values, letting a build
// adjust a model's public dimensions without editing its source:
//
//	{
//	  // widen the plate for the new bracket
//	  "mounting-plate": {"width": 50, "thickness": 5},
//	  "tablet-stand": {"angle": 65}
//	}
//
// Files may contain JSONC comments and trailing commas, which are stripped
// with github.com/tidwall/jsonc before parsing with encoding/json — the
// same handling the rest of the ecosystem applies to commented JSON
// configuration files.
package params

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/clay/internal/model"
)

// Overrides maps model name → parameter name → value.
type Overrides map[string]map[string]float64

// LoadFile reads and parses a JSONC override file.
func LoadFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read params file %s", path), err)
	}
	return Parse(data)
}

// Parse parses JSONC override bytes. Values must be numbers; any other
// value type is a parse error surfaced to the user.
func Parse(data []byte) (Overrides, error) {
	clean := jsonc.ToJSON(data)

	var overrides Overrides
	if err := json.Unmarshal(clean, &overrides); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "failed to parse params file", err)
	}
	return overrides, nil
}

// Apply sets the overrides recorded for the model's name, if any.
//
// A model that appears in the file but implements no parameters is an
// error (the override would silently do nothing otherwise); a model absent
// from the file is untouched. Unknown parameter names are rejected by the
// model's SetParam.
func (o Overrides) Apply(m model.Printable) error {
	values, ok := o[m.Name()]
	if !ok || len(values) == 0 {
		return nil
	}

	parametric, ok := m.(model.Parametric)
	if !ok {
		return fmt.Errorf("model %q does not accept parameters", m.Name())
	}

	for name, value := range values {
		if err := parametric.SetParam(name, value); err != nil {
			return fmt.Errorf("model %q: %w", m.Name(), err)
		}
	}
	return nil
}
