// Package logtail reads the end of the session log for display.
//
// The log is written by log/slog's text handler, one entry per line:
//
//	time=2026-03-14T09:26:00.000Z level=INFO msg="window opened" session=4f0c… component=wm id=about
//
// Read uses a ring buffer of maxLines strings, so it makes one pass over the
// file and keeps O(maxLines) memory regardless of file size. Parse turns a
// line into an Entry and Recent combines both, optionally keeping only the
// entries of one session.
//
// Read returns nil, nil for a missing file; the log may not exist yet.
// Other I/O errors are returned wrapped. Parse never fails: a line that is
// not key=value comes back as a bare message.
package logtail
