package parsing

import (
	"strings"
	"unicode"
)

// extractProjects treats list items and short standalone lines as project
// titles. The first continuation line becomes the description; later lines
// carrying a technology keyword, comma, or pipe become the technology list,
// anything else extends the description. If no titles were recognized the
// buffer is re-read as bare project names.
func (p *Parser) extractProjects(lines []string) []ProjectEntry {
	var entries []ProjectEntry
	var cur *ProjectEntry

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if p.isProjectTitle(line) {
			if cur != nil {
				entries = append(entries, *cur)
			}
			name := strings.TrimSpace(p.markerRe.ReplaceAllString(line, ""))
			cur = &ProjectEntry{Name: name, Technologies: []string{}}
			continue
		}
		if cur == nil {
			continue
		}
		if cur.Description == "" {
			cur.Description = line
			continue
		}
		if p.lineMentionsTech(line) || strings.ContainsAny(line, ",|") {
			cur.Technologies = append(cur.Technologies, splitTechList(line)...)
		} else {
			cur.Description = cur.Description + " " + line
		}
	}
	if cur != nil {
		entries = append(entries, *cur)
	}

	if len(entries) == 0 {
		entries = p.bareProjectNames(lines)
	}
	return entries
}

// isProjectTitle applies the title heuristic: a bullet or numbered item, or
// a short comma-free line that does not open with a year.
func (p *Parser) isProjectTitle(line string) bool {
	if p.markerRe.MatchString(line) {
		return true
	}
	return len(line) < 80 && !strings.Contains(line, ",") && !p.yearLeadRe.MatchString(line)
}

// bareProjectNames is the last resort when the title heuristic matched
// nothing: every modest standalone line becomes its own project name.
func (p *Parser) bareProjectNames(lines []string) []ProjectEntry {
	var entries []ProjectEntry
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if len(line) < 10 || len(line) > 200 {
			continue
		}
		if p.yearLeadRe.MatchString(line) || isAllCaps(line) || strings.Contains(line, "@") {
			continue
		}
		entries = append(entries, ProjectEntry{Name: line, Technologies: []string{}})
	}
	return entries
}

// lineMentionsTech reports whether any technology keyword occurs in line.
func (p *Parser) lineMentionsTech(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range p.cfg.TechKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func splitTechList(line string) []string {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '|'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isAllCaps(line string) bool {
	hasUpper := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
