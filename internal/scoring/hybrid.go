package scoring

import "go-internship-agent/internal/config"

// Hybrid blends semantic and skill scores. Inputs are clamped to [0,1] first.
func Hybrid(semantic, skill float64, w config.HybridWeights) float64 {
	return Round4(Clamp01(w.AI*Clamp01(semantic) + w.Keyword*Clamp01(skill)))
}
