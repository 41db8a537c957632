package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Pluralize returns the singular or plural form based on count.
// Examples:
//
//	Pluralize(1, "definition", "definitions") => "1 definition"
//	Pluralize(2, "definition", "definitions") => "2 definitions"
//	Pluralize(0, "definition", "definitions") => "0 definitions"
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// SplitList splits a comma-separated flag value, dropping blanks.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ExpandDefinitionPaths replaces each directory in paths with the definition
// files directly inside it, sorted by name. Files are passed through as given.
func ExpandDefinitionPaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		var found []string
		for _, e := range entries {
			if !e.IsDir() && filepath.Ext(e.Name()) == DefinitionExt {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}
