package parsing

// SectionKind identifies one recognized resume section. The zero value means
// no section is active.
type SectionKind string

const (
	SectionNone           SectionKind = ""
	SectionObjective      SectionKind = "objective"
	SectionSkills         SectionKind = "skills"
	SectionEducation      SectionKind = "education"
	SectionExperience     SectionKind = "experience"
	SectionProjects       SectionKind = "projects"
	SectionCertifications SectionKind = "certifications"
	SectionLanguages      SectionKind = "languages"
)

// sectionOrder fixes the enumeration order used everywhere a section kind is
// matched or listed. A line matching two dictionaries resolves to the kind
// that appears first here; this ordering is part of the output contract.
var sectionOrder = []SectionKind{
	SectionObjective,
	SectionSkills,
	SectionEducation,
	SectionExperience,
	SectionProjects,
	SectionCertifications,
	SectionLanguages,
}

// RawSections carries the verbatim buffered text of every detected section,
// newline-joined and never reformatted. All keys are always present so
// readers need no existence checks.
type RawSections struct {
	Objective      string `json:"objective"`
	Skills         string `json:"skills"`
	Education      string `json:"education"`
	Experience     string `json:"experience"`
	Projects       string `json:"projects"`
	Certifications string `json:"certifications"`
	Languages      string `json:"languages"`
}

// Section returns the raw text stored for kind, empty if none was detected.
func (r RawSections) Section(kind SectionKind) string {
	switch kind {
	case SectionObjective:
		return r.Objective
	case SectionSkills:
		return r.Skills
	case SectionEducation:
		return r.Education
	case SectionExperience:
		return r.Experience
	case SectionProjects:
		return r.Projects
	case SectionCertifications:
		return r.Certifications
	case SectionLanguages:
		return r.Languages
	}
	return ""
}

func (r *RawSections) set(kind SectionKind, text string) {
	switch kind {
	case SectionObjective:
		r.Objective = text
	case SectionSkills:
		r.Skills = text
	case SectionEducation:
		r.Education = text
	case SectionExperience:
		r.Experience = text
	case SectionProjects:
		r.Projects = text
	case SectionCertifications:
		r.Certifications = text
	case SectionLanguages:
		r.Languages = text
	}
}
