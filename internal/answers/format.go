package answers

import (
	"strings"

	"resume-chat-backend/internal/parsing"
)

// formatIntent renders a human-readable answer for one intent from the
// structured record. Empty output means the record holds nothing for it.
func formatIntent(name string, record *parsing.ParsedResume) string {
	switch name {
	case "skills":
		return bulletList(record.Skills)
	case "experience":
		return formatExperience(record.Experience)
	case "education":
		return formatEducation(record.Education)
	case "projects":
		return formatProjects(record.Projects)
	case "certifications":
		return bulletList(record.Certifications)
	case "contact":
		return formatContact(record.Contact)
	case "summary":
		return strings.TrimSpace(record.ObjectiveOrSummary)
	case "languages":
		return bulletList(record.Languages)
	}
	return ""
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}

func formatExperience(entries []parsing.ExperienceEntry) string {
	var lines []string
	for _, e := range entries {
		head := joinPresent(" — ", e.Position, e.Company, e.Duration)
		if head == "" {
			head = e.Details
		}
		if head != "" {
			lines = append(lines, head)
		}
		for _, r := range e.Responsibilities {
			if strings.TrimSpace(r) == "" {
				continue
			}
			lines = append(lines, "  - "+r)
		}
	}
	return strings.Join(lines, "\n")
}

func formatEducation(entries []parsing.EducationEntry) string {
	var lines []string
	for _, e := range entries {
		head := e.Degree
		if e.Field != "" {
			if head != "" {
				head += " in " + e.Field
			} else {
				head = e.Field
			}
		}
		if e.Institution != "" {
			if head != "" {
				head += ", " + e.Institution
			} else {
				head = e.Institution
			}
		}
		if e.Year != "" {
			if head != "" {
				head += " — " + e.Year
			} else {
				head = e.Year
			}
		}
		if head == "" {
			head = e.Details
		}
		if head != "" {
			lines = append(lines, head)
		}
	}
	return strings.Join(lines, "\n")
}

func formatProjects(entries []parsing.ProjectEntry) string {
	var lines []string
	for _, e := range entries {
		head := joinPresent(" — ", e.Name, e.Description)
		if len(e.Technologies) > 0 {
			techs := strings.Join(e.Technologies, ", ")
			if head != "" {
				head += " (" + techs + ")"
			} else {
				head = techs
			}
		}
		if head != "" {
			lines = append(lines, head)
		}
	}
	return strings.Join(lines, "\n")
}

func formatContact(c parsing.ContactInfo) string {
	var lines []string
	if c.Name != "" {
		lines = append(lines, "Name: "+c.Name)
	}
	if c.Email != "" {
		lines = append(lines, "Email: "+c.Email)
	}
	if c.Phone != "" {
		lines = append(lines, "Phone: "+c.Phone)
	}
	if c.Location != "" {
		lines = append(lines, "Location: "+c.Location)
	}
	return strings.Join(lines, "\n")
}

// joinPresent joins the non-blank parts with sep, preserving order.
func joinPresent(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
