package models

import (
	"github.com/mmr-tortoise/clay/internal/model"
	"github.com/mmr-tortoise/clay/internal/registry"
)

// NewRegistry returns a registry holding every model in this package.
// The CLI builds one at startup; tests can build their own with a subset.
func NewRegistry() *registry.Registry {
	r := registry.New()
	r.Register(func() model.Printable { return NewMassageTip() })
	r.Register(func() model.Printable { return NewMountingPlate() })
	r.Register(func() model.Printable { return NewTabletBody() })
	r.Register(func() model.Printable { return NewTabletClip() })
	r.Register(func() model.Printable { return NewTabletStand() })
	r.Register(func() model.Printable { return NewTreadmillCover() })
	return r
}
