package core

import (
	"fmt"
	"strings"
)

// LoadKnownTokens reads a YAML sequence of package tokens used by the
// token_conflicts check. Blank entries are dropped.
func LoadKnownTokens(path string) ([]string, error) {
	raw, err := NewYAMLStore[[]string](path, true).Load()
	if err != nil {
		return nil, fmt.Errorf("load known tokens: %w", err)
	}
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}
