package core

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadKnownTokens(t *testing.T) {
	path := writeDefinition(t, "tokens.yml", "- firefox\n- ' thunderbird '\n- ''\n")

	got, err := LoadKnownTokens(path)
	if err != nil {
		t.Fatalf("LoadKnownTokens() unexpected error: %v", err)
	}
	if want := []string{"firefox", "thunderbird"}; !slices.Equal(got, want) {
		t.Errorf("LoadKnownTokens() = %v, want %v", got, want)
	}
}

func TestLoadKnownTokens_Errors(t *testing.T) {
	if _, err := LoadKnownTokens(filepath.Join(t.TempDir(), "none.yml")); !errors.Is(err, ErrDefinitionNotFound) {
		t.Errorf("LoadKnownTokens(missing) error = %v, want ErrDefinitionNotFound", err)
	}
	if _, err := LoadKnownTokens(writeDefinition(t, "map.yml", "firefox: true\n")); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("LoadKnownTokens(map) error = %v, want ErrInvalidDefinition", err)
	}
}
