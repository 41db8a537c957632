package version

import "testing"

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{"development build", "dev", "dev"},
		{"unset", "", "dev"},
		{"release v1.0.0", "v1.0.0", "v1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalVersion := Version
			defer func() { Version = originalVersion }()

			Version = tt.version
			if result := GetVersion(); result != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, result)
			}
		})
	}
}

func TestGetFullVersion(t *testing.T) {
	originalVersion, originalCommit, originalDate := Version, Commit, Date
	defer func() { Version, Commit, Date = originalVersion, originalCommit, originalDate }()

	Version, Commit, Date = "v1.2.3", "abcdef123456", "2024-12-25T12:00:00Z"

	expected := "v1.2.3 (commit: abcdef123456, built: 2024-12-25T12:00:00Z)"
	if result := GetFullVersion(); result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}
