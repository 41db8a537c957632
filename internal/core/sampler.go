package core

import (
	"math/rand/v2"

	"github.com/EmundoT/variant-audit/internal/types"
)

// Sampler picks n distinct keys from keys. n is clamped to len(keys).
type Sampler interface {
	Sample(keys []types.LanguageKey, n int) []types.LanguageKey
}

// RandomSampler draws a uniform sample without replacement. A nil rand uses
// the unseeded global source, so repeated audits may pick different subsets.
type RandomSampler struct {
	Rand *rand.Rand
}

// Sample implements Sampler. The result is in draw order.
func (s RandomSampler) Sample(keys []types.LanguageKey, n int) []types.LanguageKey {
	if n > len(keys) {
		n = len(keys)
	}
	if n <= 0 {
		return nil
	}

	perm := rand.Perm
	if s.Rand != nil {
		perm = s.Rand.Perm
	}

	out := make([]types.LanguageKey, 0, n)
	for _, i := range perm(len(keys))[:n] {
		out = append(out, keys[i].Clone())
	}
	return out
}
