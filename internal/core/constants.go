package core

import "time"

// Audit limits
const (
	// SampleLimit is the largest number of localized variants audited for an
	// existing definition. Catalogs strictly larger than this are sampled.
	SampleLimit = 10

	// CurrentSchemaVersion is written into JSON audit output.
	CurrentSchemaVersion = "1.0"
)

// Definition files
const (
	// DefinitionExt is the extension of package definition files
	DefinitionExt = ".yml"
	// maxDefinitionFileSize caps how much of a definition file is read (1 MB).
	maxDefinitionFileSize = 1 << 20
)

// Network checks
const (
	// DefaultHTTPTimeout bounds each request made by online checks.
	DefaultHTTPTimeout = 30 * time.Second
	// NoCheck is the sha256 value that opts a definition out of checksum verification.
	NoCheck = "no_check"
)

// Watch mode
const (
	// watchDebounce coalesces bursts of editor writes into one re-audit.
	watchDebounce = 500 * time.Millisecond
)
