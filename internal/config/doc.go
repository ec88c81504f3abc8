// Package config loads the desktop shell configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/portfolios/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing, keep their defaults
//
// # TOML Format
//
//	default_open = "about"   # "" starts with every window closed
//	dock_click = "toggle"    # or "focus"
//	compact_width = 80       # below this many columns the mobile shell is used
//	skip_splash = false
//	log_file = "~/.local/state/portfolios/portfolios.log"
//
//	[min_size]               # resize floor for apps without their own minimum
//	width = 24
//	height = 8
//
//	[cascade]                # initial placement: origin + i*step
//	origin = { x = 4, y = 1 }
//	step = { x = 6, y = 2 }
//
//	[[apps]]
//	id = "music"
//	hidden = true
//
//	[[apps]]
//	id = "about"
//	title = "Hello"
//	width = 60
//	min_height = 12
//
// All sizes are terminal cells. Tilde expansion is performed on paths.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors and values
// that cannot be honoured (unknown dock_click, negative compact_width,
// app entries without an id or repeated ids). Whether an [[apps]] id names a
// real app is checked later, against the registry. A missing file is not an
// error.
package config
