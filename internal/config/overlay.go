package config

import (
	"errors"
	"fmt"
	"os"

	"go-internship-agent/internal/models"

	"gopkg.in/yaml.v3"
)

// TierFile is the on-disk shape of a company tier overlay.
type TierFile struct {
	Version string   `yaml:"version"`
	Tier1   []string `yaml:"tier1"`
	Tier2   []string `yaml:"tier2"`
}

// LoadTierFile reads a tier overlay. A missing file is not an error and
// returns ok=false.
func LoadTierFile(path string) (tf TierFile, ok bool, err error) {
	if path == "" {
		return tf, false, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tf, false, nil
		}
		return tf, false, fmt.Errorf("read tiers %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &tf); err != nil {
		return tf, false, fmt.Errorf("parse tiers %s: %w", path, err)
	}
	return tf, true, nil
}

// LoadProfile reads the candidate profile, overlaying non-empty fields on
// models.DefaultProfile. A missing file returns the default profile.
func LoadProfile(path string) (models.Profile, error) {
	p := models.DefaultProfile()
	if path == "" {
		return p, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read profile %s: %w", path, err)
	}

	var over models.Profile
	if err := yaml.Unmarshal(b, &over); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}

	if over.Summary != "" {
		p.Summary = over.Summary
	}
	if len(over.HighPrioritySkills) > 0 {
		p.HighPrioritySkills = over.HighPrioritySkills
	}
	if len(over.MediumPrioritySkills) > 0 {
		p.MediumPrioritySkills = over.MediumPrioritySkills
	}
	if len(over.PositiveKeywords) > 0 {
		p.PositiveKeywords = over.PositiveKeywords
	}
	if len(over.CandidateSkills) > 0 {
		p.CandidateSkills = over.CandidateSkills
	}
	if len(over.SkillVocabulary) > 0 {
		p.SkillVocabulary = over.SkillVocabulary
	}
	return p, nil
}
