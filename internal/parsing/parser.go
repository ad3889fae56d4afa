package parsing

import (
	"regexp"
	"strings"
)

// Parser turns extracted resume text into the canonical record using layered
// heuristics: a contact scan over the document head, one segmentation pass,
// per-section extraction, and skill recovery fallbacks when segmentation
// found nothing. Parsing is synchronous and allocation-only; a Parser is safe
// for concurrent use.
type Parser struct {
	cfg      Config
	classify segmenter

	emailRe     *regexp.Regexp
	phoneRe     *regexp.Regexp
	linkedinRe  *regexp.Regexp
	yearRe      *regexp.Regexp
	yearLeadRe  *regexp.Regexp
	monthYearRe *regexp.Regexp
	rangeRe     *regexp.Regexp
	markerRe    *regexp.Regexp

	stopWords map[string]struct{}
	sweepRes  []*regexp.Regexp
	fallbacks []skillFallback
}

// New returns a Parser with the default dictionaries.
func New() *Parser {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a Parser driven by cfg. Override dictionary fields
// before construction; the parser keeps using the maps it was given.
func NewWithConfig(cfg Config) *Parser {
	p := &Parser{
		cfg:         cfg,
		emailRe:     regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		phoneRe:     regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		linkedinRe:  regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/[A-Za-z0-9_%/.-]+`),
		yearRe:      regexp.MustCompile(`\b(19|20)\d{2}\b`),
		yearLeadRe:  regexp.MustCompile(`^(19|20)\d{2}\b`),
		monthYearRe: regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+\d{4}`),
		rangeRe:     regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*[-–—]\s*((19|20)\d{2}|present|current)\b`),
		markerRe:    regexp.MustCompile(`^(?:[-*•·]+\s*|\d+[.)]\s*)+`),
		stopWords:   make(map[string]struct{}),
	}
	for _, w := range cfg.SkillStopWords {
		p.stopWords[strings.ToLower(w)] = struct{}{}
	}
	for _, kw := range cfg.SweepKeywords {
		p.sweepRes = append(p.sweepRes, compileSweepPattern(kw))
	}
	p.classify = newSegmenter(&p.cfg)
	p.fallbacks = []skillFallback{looseHeaderScan{p}, keywordSweep{p}}
	return p
}

// Parse runs the full pipeline over text. It always returns a complete
// record: an unrecognizable document yields empty fields, never an error.
// RawText is left unset; the caller attaches it when it wants the record to
// carry the original document.
func (p *Parser) Parse(text string) *ParsedResume {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	record := &ParsedResume{}
	record.Contact = p.extractContact(lines)

	seg := newSegmenter(&p.cfg)
	var em segmentEmission
	for _, line := range lines {
		em, seg = seg.consume(line)
		p.route(record, em)
	}
	em, _ = seg.flush()
	p.route(record, em)

	// Dedupe once more across repeated section headers.
	record.Skills = dedupeFirstSeen(record.Skills)

	if len(record.Skills) == 0 && record.RawSections.Skills == "" {
		p.recoverSkills(record, text, lines)
	}

	Normalize(record)
	return record
}

// route hands a closed section buffer to its extractor. The raw join is
// stored before structured extraction so section text survives even when the
// extractor below it finds nothing.
func (p *Parser) route(record *ParsedResume, em segmentEmission) {
	if em.empty() || em.kind == SectionNone {
		return
	}
	raw := strings.Join(em.lines, "\n")
	record.RawSections.set(em.kind, raw)

	switch em.kind {
	case SectionObjective:
		record.ObjectiveOrSummary = raw
	case SectionSkills:
		record.Skills = append(record.Skills, p.extractSkills(em.lines)...)
	case SectionEducation:
		record.Education = append(record.Education, p.extractEducation(em.lines)...)
	case SectionExperience:
		record.Experience = append(record.Experience, p.extractExperience(em.lines)...)
	case SectionProjects:
		record.Projects = append(record.Projects, p.extractProjects(em.lines)...)
	case SectionCertifications:
		record.Certifications = append(record.Certifications, verbatimLines(em.lines)...)
	case SectionLanguages:
		record.Languages = append(record.Languages, verbatimLines(em.lines)...)
	}
}

// recoverSkills walks the fallback strategies in order; the first success
// populates both the skill list and the raw skills section.
func (p *Parser) recoverSkills(record *ParsedResume, text string, lines []string) {
	for _, fb := range p.fallbacks {
		skills, raw, ok := fb.recoverSkills(text, lines)
		if !ok {
			continue
		}
		record.Skills = skills
		record.RawSections.Skills = raw
		return
	}
}

// verbatimLines copies buffered lines as list entries, trimmed but otherwise
// unparsed.
func verbatimLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// dedupeFirstSeen removes exact duplicates, keeping first occurrences in
// order.
func dedupeFirstSeen(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
