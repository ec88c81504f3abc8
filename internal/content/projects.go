package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is one entry of the portfolio list.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Tags        []string `yaml:"tags"`
}

// ParseProjects decodes a projects document. Entries without a title are
// dropped.
func ParseProjects(data []byte) ([]Project, error) {
	var doc struct {
		Projects []Project `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse projects: %w", err)
	}
	out := doc.Projects[:0]
	for _, p := range doc.Projects {
		p.Title = strings.TrimSpace(p.Title)
		if p.Title == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ProjectsMarkdown lays projects out as a markdown document.
func ProjectsMarkdown(projects []Project) string {
	var b strings.Builder
	b.WriteString("# Portfolio\n\n")
	if len(projects) == 0 {
		b.WriteString("Nothing here yet.\n")
		return b.String()
	}
	for _, p := range projects {
		fmt.Fprintf(&b, "## %s\n\n", p.Title)
		if p.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", p.Description)
		}
		if len(p.Tags) > 0 {
			tags := make([]string, len(p.Tags))
			for i, tag := range p.Tags {
				tags[i] = "`" + tag + "`"
			}
			fmt.Fprintf(&b, "%s\n\n", strings.Join(tags, " "))
		}
		if p.URL != "" {
			fmt.Fprintf(&b, "%s\n\n", p.URL)
		}
	}
	return b.String()
}
