package parsing

import "strings"

// extractEducation builds entries from the education buffer. A line carrying
// a four-digit year opens a new entry with that line as its details; the
// year-less lines that follow fill institution, then degree, then append to
// details. Lines before the first dated line belong to no entry.
func (p *Parser) extractEducation(lines []string) []EducationEntry {
	var entries []EducationEntry
	var cur *EducationEntry

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if year := p.yearRe.FindString(line); year != "" {
			if cur != nil {
				entries = append(entries, *cur)
			}
			cur = &EducationEntry{Year: year, Details: line}
			continue
		}
		if cur == nil {
			continue
		}
		switch {
		case cur.Institution == "":
			cur.Institution = line
		case cur.Degree == "":
			cur.Degree = line
		default:
			cur.Details = appendDetail(cur.Details, line)
		}
	}
	if cur != nil {
		entries = append(entries, *cur)
	}
	return entries
}

// appendDetail joins free text onto an existing details string.
func appendDetail(details, line string) string {
	if details == "" {
		return line
	}
	return details + "; " + line
}
