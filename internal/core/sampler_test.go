package core

import (
	"math/rand/v2"
	"testing"

	"github.com/EmundoT/variant-audit/internal/types"
)

func keysFor(tags ...string) []types.LanguageKey {
	keys := make([]types.LanguageKey, len(tags))
	for i, tag := range tags {
		keys[i] = types.LanguageKey{tag}
	}
	return keys
}

func TestRandomSampler_DistinctSubset(t *testing.T) {
	keys := keysFor(numberedTags(20)...)
	catalog := types.NewSet(numberedTags(20)...)

	for i := 0; i < 50; i++ {
		sample := RandomSampler{}.Sample(keys, SampleLimit)
		if len(sample) != SampleLimit {
			t.Fatalf("Sample() returned %d keys, want %d", len(sample), SampleLimit)
		}
		seen := types.NewSet()
		for _, k := range sample {
			if !catalog.Has(k.Primary()) {
				t.Fatalf("Sample() returned %v which is not in the input", k)
			}
			seen.Add(k.Primary())
		}
		if seen.Len() != SampleLimit {
			t.Fatalf("Sample() returned duplicates: %v", sample)
		}
	}
}

func TestRandomSampler_ClampsToInput(t *testing.T) {
	keys := keysFor("en", "fr")
	if got := (RandomSampler{}).Sample(keys, 10); len(got) != 2 {
		t.Errorf("Sample(2 keys, 10) returned %d keys, want 2", len(got))
	}
	if got := (RandomSampler{}).Sample(keys, 0); len(got) != 0 {
		t.Errorf("Sample(keys, 0) returned %d keys, want 0", len(got))
	}
	if got := (RandomSampler{}).Sample(nil, 3); len(got) != 0 {
		t.Errorf("Sample(nil, 3) returned %d keys, want 0", len(got))
	}
}

func TestRandomSampler_SeededIsReproducible(t *testing.T) {
	keys := keysFor(numberedTags(30)...)
	a := RandomSampler{Rand: rand.New(rand.NewPCG(1, 2))}.Sample(keys, 5)
	b := RandomSampler{Rand: rand.New(rand.NewPCG(1, 2))}.Sample(keys, 5)
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("seeded samples differ: %v vs %v", a, b)
		}
	}
}

func TestRandomSampler_ReturnsCopies(t *testing.T) {
	keys := keysFor("en")
	sample := RandomSampler{}.Sample(keys, 1)
	sample[0][0] = "changed"
	if keys[0][0] != "en" {
		t.Error("Sample() result shares storage with the input keys")
	}
}
