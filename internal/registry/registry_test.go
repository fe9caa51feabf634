package registry

import (
	"testing"

	"github.com/deadsy/sdfx/sdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/clay/internal/model"
)

// namedModel is a trivial Printable whose identity is set per test.
type namedModel struct {
	name string
}

func (m *namedModel) Name() string { return m.name }
func (m *namedModel) Version() int { return 1 }
func (m *namedModel) Create() (sdf.SDF3, error) { return nil, nil }

// constructor returns a Constructor producing fresh instances with the
// given name.
func constructor(name string) Constructor {
	return func() model.Printable { return &namedModel{name: name} }
}

// TestRegisterAndNew verifies lookup returns a fresh instance of the
// registered model.
func TestRegisterAndNew(t *testing.T) {
	r := New()
	r.Register(constructor("box"))

	m, ok := r.New("box")
	require.True(t, ok)
	assert.Equal(t, "box", m.Name())

	// Each lookup constructs a distinct instance.
	m2, ok := r.New("box")
	require.True(t, ok)
	assert.NotSame(t, m, m2)
}

// TestNew_Unregistered verifies lookup of an unknown name reports absence.
func TestNew_Unregistered(t *testing.T) {
	r := New()

	m, ok := r.New("ghost")
	assert.False(t, ok)
	assert.Nil(t, m)
}

// TestNames_Sorted verifies listings come back in sorted order regardless
// of registration order.
func TestNames_Sorted(t *testing.T) {
	r := New()
	for _, name := range []string{"treadmill-cover", "box", "mounting-plate"} {
		r.Register(constructor(name))
	}

	assert.Equal(t, []string{"box", "mounting-plate", "treadmill-cover"}, r.Names())
	assert.Equal(t, 3, r.Len())
}

// TestRegister_DuplicatePanics verifies double registration fails fast.
func TestRegister_DuplicatePanics(t *testing.T) {
	r := New()
	r.Register(constructor("box"))

	assert.Panics(t, func() {
		r.Register(constructor("box"))
	})
}

// TestRegister_InvalidNamePanics verifies a model declaring an unusable
// name is caught at registration time, not at export time.
func TestRegister_InvalidNamePanics(t *testing.T) {
	r := New()
	assert.Panics(t, func() {
		r.Register(constructor("box/lid"))
	})
}
