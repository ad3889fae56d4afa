package parsing

import "strings"

// extractExperience accumulates one entry at a time. A date line sets the
// entry's duration and starts a fresh entry when the current one already has
// a duration; bullet lines collect into responsibilities; anything else
// fills company, then position, then details.
func (p *Parser) extractExperience(lines []string) []ExperienceEntry {
	var entries []ExperienceEntry
	var cur *ExperienceEntry

	ensure := func() {
		if cur == nil {
			cur = &ExperienceEntry{Responsibilities: []string{}}
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if p.isDurationLine(line) {
			if cur != nil && cur.Duration != "" {
				entries = append(entries, *cur)
				cur = nil
			}
			ensure()
			cur.Duration = line
			continue
		}
		if body, ok := stripBullet(line); ok {
			ensure()
			cur.Responsibilities = append(cur.Responsibilities, body)
			continue
		}
		ensure()
		switch {
		case cur.Company == "":
			cur.Company = line
		case cur.Position == "":
			cur.Position = line
		default:
			cur.Details = appendDetail(cur.Details, line)
		}
	}
	if cur != nil {
		entries = append(entries, *cur)
	}
	return entries
}

// isDurationLine reports whether line carries an employment date: a month
// name followed by a year, or a year range ending in a year, "present", or
// "current".
func (p *Parser) isDurationLine(line string) bool {
	return p.monthYearRe.MatchString(line) || p.rangeRe.MatchString(line)
}

// stripBullet removes a leading list marker, reporting whether one was there.
func stripBullet(line string) (string, bool) {
	for _, marker := range []string{"-", "•", "·"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return line, false
}
