package parsing

import "strings"

// extractSkills tokenizes the buffered skills lines and keeps keyword-backed
// entries first. When the keyword pass yields too few results the stop-word
// pass widens recall, appending any non-trivial token.
func (p *Parser) extractSkills(lines []string) []string {
	var tokens []string
	for _, line := range lines {
		for _, tok := range splitSkillTokens(line) {
			tok = strings.TrimSpace(tok)
			tok = strings.TrimSpace(p.markerRe.ReplaceAllString(tok, ""))
			if len(tok) < 2 {
				continue
			}
			tokens = append(tokens, tok)
		}
	}

	seen := make(map[string]struct{})
	var skills []string
	keep := func(tok string) {
		// Dedupe is exact and case sensitive; first spelling wins.
		if _, dup := seen[tok]; dup {
			return
		}
		seen[tok] = struct{}{}
		skills = append(skills, tok)
	}

	for _, tok := range tokens {
		// Stop-words never become skills, even when they substring-match a
		// keyword ("and" in "pandas", "or" in "oracle").
		if p.isStopWord(tok) {
			continue
		}
		if p.matchesTechKeyword(tok) {
			keep(tok)
		}
	}
	if len(skills) >= p.cfg.MinSkillYield {
		return skills
	}

	for _, tok := range tokens {
		if len(tok) > 100 || p.isStopWord(tok) {
			continue
		}
		keep(tok)
	}
	return skills
}

// splitSkillTokens splits one line on the skill delimiters.
func splitSkillTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ',', '|', '•', '·', '\t', '\n':
			return true
		}
		return false
	})
}

// matchesTechKeyword reports whether token matches the technology list,
// case insensitively, as substring in either direction.
func (p *Parser) matchesTechKeyword(token string) bool {
	lower := strings.ToLower(token)
	for _, kw := range p.cfg.TechKeywords {
		if strings.Contains(lower, kw) || strings.Contains(kw, lower) {
			return true
		}
	}
	return false
}

func (p *Parser) isStopWord(token string) bool {
	_, ok := p.stopWords[strings.ToLower(token)]
	return ok
}
