package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one line of the session log.
type Entry struct {
	Time      time.Time
	Level     string
	Component string
	Session   string
	Message   string
	Attrs     map[string]string
}

// Parse splits a key=value log line into an Entry. Lines that do not carry
// a msg key come back whole as the message.
func Parse(line string) Entry {
	attrs := parseAttrs(line)
	msg, ok := attrs["msg"]
	if !ok {
		return Entry{Message: strings.TrimSpace(line)}
	}

	e := Entry{
		Level:     attrs["level"],
		Component: attrs["component"],
		Session:   attrs["session"],
		Message:   msg,
		Attrs:     make(map[string]string),
	}
	if ts, err := time.Parse(time.RFC3339Nano, attrs["time"]); err == nil {
		e.Time = ts
	}
	for k, v := range attrs {
		switch k {
		case "time", "level", "component", "session", "msg":
		default:
			e.Attrs[k] = v
		}
	}
	return e
}

// Recent returns up to n entries from the end of the log at path. A
// non-empty session keeps only that run's entries; the scan window is
// widened so a busy earlier session does not hide them.
func Recent(path string, n int, session string) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	window := n
	if session != "" {
		window = n * 8
	}
	lines, err := Read(path, window)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, n)
	for i := len(lines) - 1; i >= 0 && len(entries) < n; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		e := Parse(lines[i])
		if session != "" && e.Session != session {
			continue
		}
		entries = append(entries, e)
	}
	// Oldest first, as in the file.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// parseAttrs reads space-separated key=value pairs. Quoted values follow Go
// string syntax.
func parseAttrs(line string) map[string]string {
	attrs := make(map[string]string)
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 || strings.ContainsRune(rest[:eq], ' ') {
			return attrs
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return attrs
			}
			value, _ = strconv.Unquote(quoted)
			rest = rest[len(quoted):]
		} else if sp := strings.IndexByte(rest, ' '); sp >= 0 {
			value, rest = rest[:sp], rest[sp:]
		} else {
			value, rest = rest, ""
		}
		attrs[key] = value
		rest = strings.TrimLeft(rest, " ")
	}
	return attrs
}
