package parsing

// Normalize coerces a possibly partial record, such as one decoded from an
// older stored row, into the full canonical shape: every collection becomes
// non-nil, including the ones nested in entries. It never fails.
func Normalize(r *ParsedResume) {
	if r == nil {
		return
	}
	r.Skills = ensureStringSlice(r.Skills)
	r.Certifications = ensureStringSlice(r.Certifications)
	r.Languages = ensureStringSlice(r.Languages)
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	for i := range r.Experience {
		r.Experience[i].Responsibilities = ensureStringSlice(r.Experience[i].Responsibilities)
	}
	if r.Projects == nil {
		r.Projects = []ProjectEntry{}
	}
	for i := range r.Projects {
		r.Projects[i].Technologies = ensureStringSlice(r.Projects[i].Technologies)
	}
}

func ensureStringSlice(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
