package scoring

import (
	"regexp"
	"strings"

	"go-internship-agent/internal/models"
)

// NeutralSkillScore is used when a posting names no recognizable skills.
const NeutralSkillScore = 0.5

// SkillMatcher detects vocabulary skills in text and compares them with
// what the candidate has.
type SkillMatcher struct {
	vocab     []string
	patterns  []*regexp.Regexp
	candidate map[string]bool
}

func NewSkillMatcher(vocabulary, candidate []string) *SkillMatcher {
	m := &SkillMatcher{candidate: make(map[string]bool, len(candidate))}
	for _, skill := range cleanEntries(vocabulary) {
		m.vocab = append(m.vocab, skill)
		m.patterns = append(m.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(skill)+`\b`))
	}
	for _, c := range candidate {
		m.candidate[strings.ToLower(strings.TrimSpace(c))] = true
	}
	return m
}

// Extract returns vocabulary skills present in text as whole words, in
// vocabulary order.
func (m *SkillMatcher) Extract(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for i, re := range m.patterns {
		if re.MatchString(lower) {
			found = append(found, m.vocab[i])
		}
	}
	return found
}

// Match scores the fraction of required skills the candidate has.
func (m *SkillMatcher) Match(text string) (float64, models.SkillMatch) {
	required := m.Extract(text)
	if len(required) == 0 {
		return NeutralSkillScore, models.SkillMatch{
			Required:  []string{},
			Matched:   []string{},
			Missing:   []string{},
			MatchRate: NeutralSkillScore,
		}
	}

	matched, missing := []string{}, []string{}
	for _, skill := range required {
		if m.candidate[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	rate := Round4(float64(len(matched)) / float64(len(required)))
	return rate, models.SkillMatch{
		Required:  required,
		Matched:   matched,
		Missing:   missing,
		MatchRate: rate,
	}
}
