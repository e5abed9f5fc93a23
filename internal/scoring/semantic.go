package scoring

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"go-internship-agent/internal/ai"
	"go-internship-agent/internal/models"
)

// SemanticScorer estimates how close a posting is to the candidate profile.
// Implementations return a value in [0,1] and never fail: errors degrade to
// a fallback score.
type SemanticScorer interface {
	Name() string
	Score(ctx context.Context, job *models.Job) float64
}

// KeywordSemantic approximates semantic similarity with a tiered keyword
// scorer. It is deterministic and needs no network.
type KeywordSemantic struct {
	tiered TieredScorer
}

func NewKeywordSemantic(tiered TieredScorer) *KeywordSemantic {
	return &KeywordSemantic{tiered: tiered}
}

func (k *KeywordSemantic) Name() string { return "keyword" }

func (k *KeywordSemantic) Score(_ context.Context, job *models.Job) float64 {
	if FullText(job, k.tiered.titleWeight) == "" {
		return 0
	}
	return k.tiered.Score(job)
}

// EmbeddingSemantic scores by cosine similarity between the posting's text
// and the profile summary. The profile vector is computed once per scorer;
// a failed profile embed is remembered too, unless it failed only because
// the caller's context was cancelled or timed out.
type EmbeddingSemantic struct {
	embedder    ai.Embedder
	profileText string
	titleWeight int

	// Fallback scores the posting when embedding fails. Nil means 0.
	Fallback SemanticScorer

	mu         sync.Mutex
	profileVec []float64
	profileErr error
}

func NewEmbeddingSemantic(embedder ai.Embedder, profile models.Profile, titleWeight int) *EmbeddingSemantic {
	text := strings.TrimSpace(profile.Summary)
	if text == "" {
		text = strings.Join(append(append([]string{}, profile.HighPrioritySkills...), profile.MediumPrioritySkills...), ", ")
	}
	return &EmbeddingSemantic{
		embedder:    embedder,
		profileText: text,
		titleWeight: titleWeight,
	}
}

func (e *EmbeddingSemantic) Name() string { return "embedding" }

func (e *EmbeddingSemantic) profileVector(ctx context.Context) ([]float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.profileVec != nil || e.profileErr != nil {
		return e.profileVec, e.profileErr
	}

	vecs, err := e.embedder.Embed(ctx, []string{e.profileText})
	switch {
	case err != nil && ctx.Err() != nil:
		//retry on the next call with a live context
		return nil, fmt.Errorf("embed profile: %w", err)
	case err != nil:
		e.profileErr = fmt.Errorf("embed profile: %w", err)
	case len(vecs) != 1:
		e.profileErr = fmt.Errorf("embed profile: expected 1 vector, got %d", len(vecs))
	default:
		e.profileVec = vecs[0]
	}
	return e.profileVec, e.profileErr
}

func (e *EmbeddingSemantic) Score(ctx context.Context, job *models.Job) (score float64) {
	text := FullText(job, e.titleWeight)
	if text == "" {
		return 0
	}

	defer func() {
		if r := recover(); r != nil {
			score = e.degrade(ctx, job, fmt.Errorf("panic: %v", r))
		}
	}()

	pv, err := e.profileVector(ctx)
	if err != nil {
		return e.degrade(ctx, job, err)
	}

	vecs, err := e.embedder.Embed(ctx, []string{text})
	if err != nil {
		return e.degrade(ctx, job, err)
	}
	if len(vecs) != 1 {
		return e.degrade(ctx, job, fmt.Errorf("expected 1 vector, got %d", len(vecs)))
	}

	sim, err := ai.Cosine(pv, vecs[0])
	if err != nil {
		return e.degrade(ctx, job, err)
	}
	return Round4(Clamp01(sim))
}

func (e *EmbeddingSemantic) degrade(ctx context.Context, job *models.Job, err error) float64 {
	if e.Fallback == nil {
		log.Printf("⚠️ Semantic scoring failed for %q, using 0: %v", job.Title, err)
		return 0
	}
	log.Printf("⚠️ Semantic scoring failed for %q, falling back to %s: %v", job.Title, e.Fallback.Name(), err)
	return e.Fallback.Score(ctx, job)
}
