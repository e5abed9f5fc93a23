package models

// Profile is the fixed candidate description every posting is scored against.
type Profile struct {
	Summary              string   `yaml:"summary" json:"summary"`
	HighPrioritySkills   []string `yaml:"high_priority_skills" json:"high_priority_skills"`
	MediumPrioritySkills []string `yaml:"medium_priority_skills" json:"medium_priority_skills"`
	PositiveKeywords     []string `yaml:"positive_keywords" json:"positive_keywords"`
	// CandidateSkills is what the candidate actually has; used by skill matching.
	CandidateSkills []string `yaml:"candidate_skills" json:"candidate_skills"`
	// SkillVocabulary is the set of skills that can be detected in a posting.
	SkillVocabulary []string `yaml:"skill_vocabulary" json:"skill_vocabulary"`
}

// DefaultProfile is an entry-level data analyst looking for internships in India.
func DefaultProfile() Profile {
	return Profile{
		Summary: "Entry-level data analyst seeking a paid data analyst or business analyst internship. " +
			"Skilled in SQL, Excel, Power BI, Tableau and Python (pandas) for data cleaning, " +
			"statistics, dashboards and data visualization. Open to remote work or roles in India.",
		HighPrioritySkills: []string{
			"sql", "excel", "power bi", "python", "tableau",
			"data analyst", "data analysis", "data analytics",
		},
		MediumPrioritySkills: []string{
			"pandas", "numpy", "statistics", "dashboard", "visualization",
			"business analyst", "reporting", "etl", "google sheets", "looker",
		},
		PositiveKeywords: []string{
			"remote", "work from home", "stipend", "paid", "fresher", "trainee", "india",
		},
		CandidateSkills: []string{
			"python", "sql", "excel", "power bi", "tableau",
			"pandas", "data visualization", "statistics",
		},
		SkillVocabulary: []string{
			"python", "sql", "excel", "power bi", "powerbi", "tableau",
			"pandas", "numpy", "r programming", "statistics", "machine learning",
			"data visualization", "etl", "data warehouse", "dashboard",
			"jupyter", "matplotlib", "seaborn", "mysql", "postgresql",
		},
	}
}
