package scoring

import (
	"context"
	"errors"
	"log"

	"go-internship-agent/internal/ai"
	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"
)

// Context holds everything needed to score postings. Build one per run;
// it is read-only afterwards and safe for concurrent ScoreJob calls.
type Context struct {
	Keyword  TieredScorer
	Semantic SemanticScorer
	Skills   *SkillMatcher
	Tiers    *TierTable
	hybrid   config.HybridWeights
	rank     config.RankWeights
}

// NewContext wires the scorers selected by cfg. embedder may be nil unless
// the embedding strategy is configured.
func NewContext(cfg *config.Config, profile models.Profile, tiers *TierTable, embedder ai.Embedder) (*Context, error) {
	s := cfg.Scoring
	if tiers == nil {
		tiers = DefaultTierTable()
	}

	keywordSemantic := NewKeywordSemantic(NewTieredScorer(profile, s.SemanticKeyword, s.TitleWeight, s.EntryLevelTerms))

	var semantic SemanticScorer
	switch s.SemanticStrategy {
	case "", "keyword":
		semantic = keywordSemantic
	case "embedding":
		if embedder == nil {
			return nil, errors.New("embedding strategy selected but no embedder configured")
		}
		emb := NewEmbeddingSemantic(embedder, profile, s.TitleWeight)
		if s.FallbackOnError {
			emb.Fallback = keywordSemantic
		}
		semantic = emb
	default:
		return nil, errors.New("unknown semantic strategy: " + s.SemanticStrategy)
	}

	return &Context{
		Keyword:  NewTieredScorer(profile, s.Keyword, s.TitleWeight, s.EntryLevelTerms),
		Semantic: semantic,
		Skills:   NewSkillMatcher(profile.SkillVocabulary, profile.CandidateSkills),
		Tiers:    tiers,
		hybrid:   s.Hybrid,
		rank:     s.Rank,
	}, nil
}

// ScoreJob fills every score field on job. A panic inside a scorer is
// recovered and leaves the posting with floor scores.
func (c *Context) ScoreJob(ctx context.Context, job *models.Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️ Scoring panicked for %q: %v", job.Title, r)
			c.floor(job)
		}
	}()

	job.KeywordScore = c.Keyword.Score(job)
	job.SemanticScore = c.Semantic.Score(ctx, job)

	skillScore, meta := c.Skills.Match(job.Title + " " + job.Description)
	job.SkillMatch = meta
	job.HybridScore = Hybrid(job.SemanticScore, skillScore, c.hybrid)

	job.CompanyTier, job.CompanyScore = c.Tiers.Classify(job.Company)
	job.FinalRank = FinalRank(job.HybridScore, job.CompanyScore, c.rank)
	job.ShouldAlert = ShouldAlert(job)
}

func (c *Context) floor(job *models.Job) {
	job.KeywordScore = 0
	job.SemanticScore = 0
	job.SkillMatch = models.SkillMatch{Required: []string{}, Matched: []string{}, Missing: []string{}}
	job.HybridScore = 0
	job.CompanyTier, job.CompanyScore = 3, Tier3Score
	job.FinalRank = FinalRank(0, Tier3Score, c.rank)
	job.ShouldAlert = false
}

// ScoreBatch scores a copy of jobs and returns it in input order. Ranking
// is left to the caller.
func (c *Context) ScoreBatch(ctx context.Context, jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	copy(out, jobs)
	for i := range out {
		c.ScoreJob(ctx, &out[i])
	}
	return out
}

// Explanation is a scored posting plus the pieces behind each number.
type Explanation struct {
	Job     models.Job  `json:"job"`
	Keyword Breakdown   `json:"keyword"`
	Company CompanyInfo `json:"company"`
}

func (c *Context) Explain(ctx context.Context, job models.Job) Explanation {
	c.ScoreJob(ctx, &job)
	return Explanation{
		Job:     job,
		Keyword: c.Keyword.Explain(&job),
		Company: c.Tiers.Info(job.Company),
	}
}
