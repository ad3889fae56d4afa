package parsing

import "strings"

// extractContact scans only the first five non-blank lines for contact
// details. The first document line becomes the name unless it reads as a
// section header.
func (p *Parser) extractContact(lines []string) ContactInfo {
	head := headLines(lines, 5)

	var c ContactInfo
	for _, line := range head {
		if c.Email == "" {
			c.Email = p.emailRe.FindString(line)
		}
		if c.Phone == "" {
			c.Phone = p.phoneRe.FindString(line)
		}
		if c.Location == "" {
			// Profile links share the Location field; there is no separate
			// profile URL field on the record.
			c.Location = p.linkedinRe.FindString(line)
		}
	}

	if len(head) > 0 {
		if _, isHeader := p.classify.headerKind(head[0]); !isHeader {
			c.Name = head[0]
		}
	}
	return c
}

// headLines returns up to n leading non-blank lines, trimmed.
func headLines(lines []string, n int) []string {
	head := make([]string, 0, n)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		head = append(head, trimmed)
		if len(head) == n {
			break
		}
	}
	return head
}
