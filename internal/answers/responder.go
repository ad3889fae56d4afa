package answers

import (
	"context"
	"strings"
	"time"

	"resume-chat-backend/internal/parsing"
	"resume-chat-backend/internal/shared/telemetry"
)

// NotFoundMessage is returned whenever the requested information is absent
// from the record. Clients key off the exact literal.
const NotFoundMessage = "The resume does not contain this information."

// helpMessage answers an empty query by naming every recognized intent.
const helpMessage = "Please ask a question about the resume. I can answer questions about " +
	"skills, experience, education, projects, certifications, contact, summary, or languages."

const defaultGenTimeout = 10 * time.Second

// Generator is the external model delegate that answers from the full
// document text. Implementations must honor ctx cancellation; a failed or
// empty attempt is simply skipped, never retried.
type Generator interface {
	Answer(ctx context.Context, fullText string, record *parsing.ParsedResume, question string) (string, error)
}

// Source records which path produced an answer.
type Source string

const (
	SourceRAG        Source = "rag"
	SourceSections   Source = "sections"
	SourceStructured Source = "structured"
	SourceNone       Source = "none"
	SourceHelp       Source = "help"
)

// Responder answers free-text questions about one parsed record. The
// generation delegate runs first when it is configured and the record
// carries raw text; the deterministic keyword path always yields an answer
// otherwise, falling to the fixed not-found message.
type Responder struct {
	Gen     Generator     // optional
	Timeout time.Duration // bound on the delegate call; defaulted when zero
}

// intent maps one query category to its trigger keywords and backing
// section. Intents are evaluated in this order; the first match wins.
type intent struct {
	name     string
	kind     parsing.SectionKind
	keywords []string
}

var intents = []intent{
	{name: "skills", kind: parsing.SectionSkills, keywords: []string{
		"skill", "skills", "technology", "technologies", "tech stack", "stack", "tools",
	}},
	{name: "experience", kind: parsing.SectionExperience, keywords: []string{
		"experience", "work", "job", "jobs", "employment", "career", "company", "companies", "position", "role",
	}},
	{name: "education", kind: parsing.SectionEducation, keywords: []string{
		"education", "degree", "university", "college", "school", "studied", "study", "academic",
	}},
	{name: "projects", kind: parsing.SectionProjects, keywords: []string{
		"project", "projects", "portfolio", "built", "build",
	}},
	{name: "certifications", kind: parsing.SectionCertifications, keywords: []string{
		"certification", "certifications", "certificate", "certificates", "certified", "license", "licenses",
	}},
	{name: "contact", kind: parsing.SectionNone, keywords: []string{
		"contact", "email", "phone", "address", "location", "reach", "linkedin", "number",
	}},
	{name: "summary", kind: parsing.SectionObjective, keywords: []string{
		"summary", "objective", "about", "profile", "overview", "introduction",
	}},
	{name: "languages", kind: parsing.SectionLanguages, keywords: []string{
		"language", "languages", "speak", "speaks", "spoken",
	}},
}

func (in intent) matches(q string) bool {
	for _, kw := range in.keywords {
		if q == kw || strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// Answer resolves query against record. It never fails: every path ends in
// an answer string, at worst the fixed not-found message.
func (r *Responder) Answer(ctx context.Context, record *parsing.ParsedResume, query string) (string, Source) {
	if record == nil {
		record = &parsing.ParsedResume{}
	}
	parsing.Normalize(record)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return helpMessage, SourceHelp
	}

	if answer, ok := r.generate(ctx, record, query); ok {
		return answer, SourceRAG
	}

	for _, in := range intents {
		if !in.matches(q) {
			continue
		}
		if in.kind != parsing.SectionNone {
			// Verbatim section text beats any reconstruction.
			if raw := strings.TrimSpace(record.RawSections.Section(in.kind)); raw != "" {
				return raw, SourceSections
			}
		}
		if formatted := formatIntent(in.name, record); formatted != "" {
			return formatted, SourceStructured
		}
		return NotFoundMessage, SourceNone
	}
	return NotFoundMessage, SourceNone
}

// generate tries the external delegate within a bounded wait. Any failure or
// empty answer reports not-ok so the caller falls through; errors are logged
// and swallowed, never propagated.
func (r *Responder) generate(ctx context.Context, record *parsing.ParsedResume, query string) (string, bool) {
	if r.Gen == nil || record.RawText == "" {
		return "", false
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultGenTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	answer, err := r.Gen.Answer(ctx, record.RawText, record, query)
	if err != nil {
		telemetry.Info("generation unavailable, using deterministic answer", map[string]any{
			"error": err.Error(),
		})
		return "", false
	}
	answer = strings.TrimSpace(answer)
	return answer, answer != ""
}
