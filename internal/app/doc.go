// Package app is the composition root of the desktop shell.
//
// Run wires the pieces in order:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read ~/.config/portfolios/config.toml
//	       ├─────> logging.Setup()    Route slog to the log file
//	       ├─────> prefs.Load()       Theme choice
//	       ├─────> content.Builtin()  Embedded panels
//	       ├─────> registry.New()     Apps + config overrides
//	       ├─────> wm.New()           Window store over a viewport tracker
//	       └─────> ui.Run()           Bubble Tea program (blocks)
//
// Fatal errors (returned from Run): a config file that exists but does not
// parse or validate, an unwritable log file, an override naming an unknown
// app. A missing config or prefs file falls back to defaults.
package app
