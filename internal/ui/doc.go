// Package ui provides the Bubble Tea front end of the desktop shell.
//
// # Layout
//
// On a wide terminal the screen is a desktop: a one-row top bar with the
// focused window and a clock, the desktop area where windows are painted in
// z-order over a wallpaper, and a one-row dock. The desktop area is the
// viewport the window manager clamps against.
//
// Below the compact width (or with -mobile) the same apps run in a
// single-app shell: an icon grid on the home screen and one full-screen app
// at a time, closed by swiping up from the home bar.
//
// # Windows
//
// Each window is drawn with a title bar (icon, title, maximize and close
// buttons), side borders and a bottom edge whose right corner is the resize
// handle. Content panels render into a bubbles viewport sized to the window
// body, so long content scrolls with the wheel or the scroll keys.
//
// # Pointer gestures
//
// A left press on a title bar or resize handle starts a wm.Handler gesture
// and acquires the wm.Capture. Motion and release events then go to that
// handler wherever the pointer is, which keeps a fast drag attached to its
// window. The capture is released on pointer-up, on Esc, when the terminal
// loses focus and when a new press arrives while a stale one is held.
//
// # Key Bindings
//
//   - 1-9: Open or close the app in that dock position
//   - tab: Raise the bottom-most window
//   - x / m: Close / maximize the front window
//   - arrows, shift+arrows: Move / resize the front window
//   - pgup/pgdown, j/k, g/G: Scroll the front window
//   - T: Cycle theme (saved to prefs)
//   - ?: Toggle help
//   - q or ctrl+c: Quit
package ui
