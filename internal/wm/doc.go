// Package wm is the desktop window manager behind the portfolios shell.
//
// # Overview
//
// Every registered app owns exactly one window record, created when the
// Manager is built and never removed. Opening and closing only toggle
// visibility; position, size and z-order survive a close.
//
//	Mouse event ──> Handler ──> Manager ──> Store ──> render
//	                (gesture)   (clamp, z)
//
// # Core Types
//
//   - Store: id → Record, read-only outside this package
//   - Manager: Open, Close, Focus, Move, Resize, ToggleMaximize
//   - Handler: per-window drag/resize gesture state
//   - Capture: which Handler owns the pointer between press and release
//   - Tracker: last known viewport size, fed by terminal resize events
//
// # Z-order
//
// Windows start at BaseZ; the default-open window gets DefaultOpenZ, which is
// also the first value of the highest-z counter. Bringing a window to the
// front assigns counter+1. The counter never decreases, so the most recently
// raised window is always strictly on top.
//
// # Clamping
//
// Out-of-range input is corrected, never rejected:
//
//	x ∈ [0, viewport.Width − width]
//	y ∈ [0, viewport.Height − height]
//	width ∈ [min.Width, max(min.Width, viewport.Width − x)]
//
// The viewport is read at call time. A terminal resize invalidates nothing;
// the next move or resize simply sees the new bounds.
//
// # Units
//
// The package does not care whether sizes are pixels or terminal cells.
// Defaults (cascade at 150,100 stepping 50,40 and a 320×240 minimum) are the
// pixel-scale ones; the terminal shell overrides them through Options.
//
// # Concurrency
//
// None. Every call runs to completion inside one UI event handler.
package wm
