package parsing

// ParsedResume is the canonical structured record produced from one resume
// document. It is built once per document and not mutated afterwards, except
// that the owning service may attach RawText before persisting.
type ParsedResume struct {
	ObjectiveOrSummary string            `json:"objectiveOrSummary"`
	Skills             []string          `json:"skills"`
	Education          []EducationEntry  `json:"education"`
	Experience         []ExperienceEntry `json:"experience"`
	Projects           []ProjectEntry    `json:"projects"`
	Certifications     []string          `json:"certifications"`
	Languages          []string          `json:"languages"`
	Contact            ContactInfo       `json:"contact"`
	RawSections        RawSections       `json:"rawSections"`
	RawText            string            `json:"rawText,omitempty"`
}

// ContactInfo holds header contact details. Fields default to empty strings,
// never absent, so downstream formatting needs no nil checks.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// EducationEntry is a partial record; fields fill opportunistically as the
// section's lines are consumed in order.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
	Details     string `json:"details"`
}

// ExperienceEntry is one employment block.
type ExperienceEntry struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
	Details          string   `json:"details"`
}

// ProjectEntry is one project block.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}
