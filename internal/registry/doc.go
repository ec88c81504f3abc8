// Package registry declares the apps the desktop can show.
//
// A Descriptor carries an app's id, title, icon glyph, an opaque content
// handle and its default and minimum window sizes. The Registry keeps them
// in a fixed order that drives the dock and the initial window cascade.
//
// Registries are immutable. Config overrides go through Apply, which
// returns a new Registry:
//
//	reg, err := registry.New(registry.Builtin())
//	reg, err = reg.Apply([]registry.Override{{ID: "music", Hidden: true}})
//
// Windows converts the registry into the wm.App list the window manager is
// built from.
package registry
