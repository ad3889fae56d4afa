package parsing

import (
	"strings"
	"unicode"
)

// segmentEmission is a closed buffer handed back by the segmenter: the lines
// collected for kind, in input order. kind is SectionNone for preamble lines
// consumed before the first recognized header; callers discard those.
type segmentEmission struct {
	kind  SectionKind
	lines []string
}

func (e segmentEmission) empty() bool { return len(e.lines) == 0 }

// segmenter is the left-to-right line scan modeled as an explicit state
// machine. It is a value type: consume and flush never mutate their receiver
// and return the successor state instead, so any intermediate state can be
// held and replayed in tests.
type segmenter struct {
	cfg    *Config
	active SectionKind
	buffer []string
}

func newSegmenter(cfg *Config) segmenter {
	return segmenter{cfg: cfg}
}

// consume advances the machine by one line. When line opens a new section the
// previously buffered lines come back as an emission and the header line
// itself is dropped; otherwise the line is buffered verbatim. Blank lines are
// ignored.
func (s segmenter) consume(line string) (segmentEmission, segmenter) {
	if strings.TrimSpace(line) == "" {
		return segmentEmission{}, s
	}
	if kind, ok := s.headerKind(line); ok {
		var em segmentEmission
		if len(s.buffer) > 0 {
			em = segmentEmission{kind: s.active, lines: s.buffer}
		}
		s.active = kind
		s.buffer = nil
		return em, s
	}
	// The three-index append forces a copy, keeping buffers owned by earlier
	// states intact.
	s.buffer = append(s.buffer[:len(s.buffer):len(s.buffer)], line)
	return segmentEmission{}, s
}

// flush closes the machine at end of input, emitting whatever is buffered for
// the active section.
func (s segmenter) flush() (segmentEmission, segmenter) {
	if len(s.buffer) == 0 {
		return segmentEmission{}, s
	}
	em := segmentEmission{kind: s.active, lines: s.buffer}
	s.buffer = nil
	return em, s
}

// headerKind classifies line as a section header. Kinds are tried in the
// fixed enumeration order and the first match wins.
func (s segmenter) headerKind(line string) (SectionKind, bool) {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)
	for _, kind := range sectionOrder {
		for _, phrase := range s.cfg.SectionTriggers[kind] {
			if s.matchesPhrase(lower, trimmed, phrase) {
				return kind, true
			}
		}
	}
	return SectionNone, false
}

// matchesPhrase reports whether a line matches one trigger phrase: an exact
// match (optional trailing colon), a prefix match with a separator, or an
// embedded match on a line that still has header shape.
func (s segmenter) matchesPhrase(lower, trimmed, phrase string) bool {
	if lower == phrase || lower == phrase+":" {
		return true
	}
	if strings.HasPrefix(lower, phrase+":") ||
		strings.HasPrefix(lower, phrase+"-") ||
		strings.HasPrefix(lower, phrase+" ") {
		return true
	}
	if !strings.Contains(lower, phrase) {
		return false
	}
	return s.looksLikeHeader(trimmed)
}

// looksLikeHeader applies the shape tests that let a line with an embedded
// trigger phrase count as a header: short, or shouty, or carrying a colon, or
// moderately short prose-free text.
func (s segmenter) looksLikeHeader(line string) bool {
	if len(line) < s.cfg.MaxHeaderLen {
		return true
	}
	if isUpperHeader(line) {
		return true
	}
	if strings.Contains(line, ":") {
		return true
	}
	return len(line) < s.cfg.MaxRelaxedHeaderLen && !strings.ContainsAny(line, ",.")
}

// isUpperHeader reports whether line consists only of uppercase letters,
// spaces, and colons, with at least one letter.
func isUpperHeader(line string) bool {
	hasLetter := false
	for _, r := range line {
		switch {
		case unicode.IsUpper(r):
			hasLetter = true
		case r == ' ' || r == ':':
		default:
			return false
		}
	}
	return hasLetter
}
