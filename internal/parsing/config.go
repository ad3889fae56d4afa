package parsing

// Config carries the keyword dictionaries and tolerances that drive
// segmentation, extraction, and the fallback scans. Callers normally start
// from DefaultConfig and override individual fields; the zero value detects
// nothing.
type Config struct {
	// SectionTriggers maps each section kind to the header phrases that open
	// it. Matching iterates kinds in their fixed enumeration order, so a line
	// matching two kinds resolves to the earlier one.
	SectionTriggers map[SectionKind][]string

	// TechKeywords is the curated technology list used to confirm skill
	// tokens via case-insensitive substring match in either direction.
	TechKeywords []string

	// SkillStopWords are filler tokens never kept as skills.
	SkillStopWords []string

	// SweepKeywords is the smaller list used by the whole-document fallback
	// sweep, matched on word boundaries.
	SweepKeywords []string

	// MinSkillYield is the skill count under which extraction re-runs with
	// the keyword requirement dropped.
	MinSkillYield int

	// MaxHeaderLen bounds the short-line header shape test.
	MaxHeaderLen int

	// MaxRelaxedHeaderLen bounds the relaxed header shape test for lines
	// without commas or periods.
	MaxRelaxedHeaderLen int

	// MaxFallbackHeaderLen bounds candidate header lines during the loose
	// header re-scan.
	MaxFallbackHeaderLen int
}

// DefaultConfig returns the standard dictionaries. Each call returns fresh
// copies so callers may mutate the result.
func DefaultConfig() Config {
	return Config{
		SectionTriggers: map[SectionKind][]string{
			SectionObjective: {
				"objective", "career objective", "professional summary",
				"summary", "profile", "about me", "about",
			},
			SectionSkills: {
				"skills", "technical skills", "tech stack", "core competencies",
				"competencies", "technologies", "expertise",
				"technical proficiencies", "areas of expertise",
			},
			SectionEducation: {
				"education", "academic background", "academics",
				"qualifications", "educational qualifications",
			},
			SectionExperience: {
				"experience", "work experience", "professional experience",
				"employment", "employment history", "work history",
				"career history", "internships",
			},
			SectionProjects: {
				"projects", "personal projects", "academic projects",
				"key projects", "selected projects", "portfolio",
			},
			SectionCertifications: {
				"certifications", "certificates", "licenses", "courses",
				"training", "awards",
			},
			SectionLanguages: {
				"languages", "language proficiency", "spoken languages",
			},
		},
		TechKeywords: []string{
			"python", "java", "javascript", "typescript", "golang", "go",
			"c++", "c#", "ruby", "php", "swift", "kotlin", "scala", "rust",
			"sql", "mysql", "postgresql", "postgres", "mongodb", "redis",
			"elasticsearch", "oracle", "sqlite", "dynamodb",
			"html", "css", "react", "angular", "vue", "svelte", "node",
			"node.js", "express", "next.js", "django", "flask", "spring",
			"rails", "laravel", ".net", "fastapi",
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			"ansible", "jenkins", "git", "github", "gitlab", "linux", "bash",
			"ci/cd", "graphql", "rest", "grpc", "kafka", "rabbitmq",
			"spark", "hadoop", "airflow", "tensorflow", "pytorch",
			"scikit-learn", "pandas", "numpy", "machine learning",
			"deep learning", "data analysis", "tableau", "power bi",
			"agile", "scrum", "jira",
		},
		SkillStopWords: []string{
			"and", "or", "the", "with", "using", "experience", "years",
			"proficient", "skills", "technical",
		},
		SweepKeywords: []string{
			"python", "java", "javascript", "typescript", "golang", "react",
			"angular", "vue", "node", "ruby", "php", "swift", "kotlin",
			"rust", "sql", "mysql", "postgresql", "mongodb", "redis",
			"docker", "kubernetes", "aws", "azure", "terraform", "git",
			"linux", "html", "css", "django", "flask", "spring", "c++", "c#",
		},
		MinSkillYield:        3,
		MaxHeaderLen:         60,
		MaxRelaxedHeaderLen:  100,
		MaxFallbackHeaderLen: 150,
	}
}
