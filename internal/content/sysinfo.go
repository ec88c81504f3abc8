package content

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/portfolios/internal/logtail"
)

// activityLines is how many log entries the panel shows.
const activityLines = 4

// SystemInfo shows live facts about the session.
type SystemInfo struct{}

// Render implements Panel.
func (SystemInfo) Render(env Env) (string, error) {
	label := lipgloss.NewStyle().Bold(true).Width(10)

	uptime := "-"
	if !env.Started.IsZero() && !env.Now.IsZero() {
		uptime = formatUptime(env.Now.Sub(env.Started))
	}
	clock := "-"
	if !env.Now.IsZero() {
		clock = env.Now.Format("15:04:05")
	}

	rows := [][2]string{
		{"Time", clock},
		{"Date", dateOrDash(env.Now)},
		{"Uptime", uptime},
		{"Screen", fmt.Sprintf("%d×%d", env.Columns, env.Rows)},
		{"Mode", orDash(env.Mode)},
		{"Theme", orDash(env.Theme)},
		{"OS", runtime.GOOS + "/" + runtime.GOARCH},
		{"Runtime", runtime.Version()},
		{"CPUs", fmt.Sprintf("%d", runtime.NumCPU())},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, label.Render(r[0])+r[1])
	}
	if activity := recentActivity(env); len(activity) > 0 {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render("Recent activity"))
		lines = append(lines, activity...)
	}
	body := strings.Join(lines, "\n")
	if env.Width > 0 {
		body = lipgloss.NewStyle().MaxWidth(env.Width).Render(body)
	}
	return body, nil
}

// recentActivity formats the last log entries of this session. Read errors
// hide the section rather than failing the panel.
func recentActivity(env Env) []string {
	if env.LogFile == "" {
		return nil
	}
	entries, err := logtail.Recent(env.LogFile, activityLines, env.Session)
	if err != nil {
		return nil
	}
	faint := lipgloss.NewStyle().Faint(true)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		stamp := "--:--:--"
		if !e.Time.IsZero() {
			stamp = e.Time.Local().Format("15:04:05")
		}
		msg := e.Message
		if id := e.Attrs["id"]; id != "" {
			msg += " " + id
		}
		out = append(out, faint.Render(stamp)+" "+msg)
	}
	return out
}

func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func dateOrDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Mon 02 Jan 2006")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
