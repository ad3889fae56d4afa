package parsing

import (
	"regexp"
	"strings"
)

// skillFallback is one recovery strategy for documents where segmentation
// produced no skills section at all. Strategies are tried in order and the
// first to report ok wins.
type skillFallback interface {
	recoverSkills(text string, lines []string) (skills []string, raw string, ok bool)
}

// looseHeaderScan re-scans every line, including ones segmentation
// discarded, for a short line mentioning a skills phrase, then harvests the
// block that follows it. One blank line is tolerated inside the block; a
// second gap, or a line mentioning another section, ends it.
type looseHeaderScan struct {
	p *Parser
}

func (f looseHeaderScan) recoverSkills(_ string, lines []string) ([]string, string, bool) {
	start := -1
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || len(line) >= f.p.cfg.MaxFallbackHeaderLen {
			continue
		}
		if f.p.mentionsSection(line, SectionSkills) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, "", false
	}

	var collected []string
	gaps := 0
	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			gaps++
			if gaps >= 2 {
				break
			}
			continue
		}
		if f.p.mentionsOtherSection(line, SectionSkills) {
			break
		}
		gaps = 0
		collected = append(collected, line)
	}
	if len(collected) == 0 {
		return nil, "", false
	}
	return f.p.extractSkills(collected), strings.Join(collected, "\n"), true
}

// keywordSweep is the terminal strategy: a word-boundary pass over the whole
// document for the sweep keyword list, keeping each hit's first literal
// casing, in keyword-list order.
type keywordSweep struct {
	p *Parser
}

func (f keywordSweep) recoverSkills(text string, _ []string) ([]string, string, bool) {
	var found []string
	for _, re := range f.p.sweepRes {
		if loc := re.FindStringIndex(text); loc != nil {
			found = append(found, text[loc[0]:loc[1]])
		}
	}
	if len(found) == 0 {
		return nil, "", false
	}
	return found, strings.Join(found, ", "), true
}

// compileSweepPattern builds the word-boundary pattern for one keyword.
// c++ and c# are special cases: + and # are not word characters, so a
// trailing boundary would never match.
func compileSweepPattern(keyword string) *regexp.Regexp {
	switch keyword {
	case "c++":
		return regexp.MustCompile(`(?i)\bc\+\+`)
	case "c#":
		return regexp.MustCompile(`(?i)\bc#`)
	}
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// mentionsSection reports whether line contains any trigger phrase of kind.
func (p *Parser) mentionsSection(line string, kind SectionKind) bool {
	lower := strings.ToLower(line)
	for _, phrase := range p.cfg.SectionTriggers[kind] {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// mentionsOtherSection reports whether line contains a trigger phrase of any
// section other than skip.
func (p *Parser) mentionsOtherSection(line string, skip SectionKind) bool {
	for _, kind := range sectionOrder {
		if kind == skip {
			continue
		}
		if p.mentionsSection(line, kind) {
			return true
		}
	}
	return false
}
