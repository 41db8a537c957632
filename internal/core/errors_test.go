package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrDefinitionNotFound,
		ErrDefinitionTooLarge,
		ErrInvalidDefinition,
		ErrDuplicateLanguage,
		ErrUnknownCheck,
	}
	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf(ErrLoadDefinitionMsg, "app.yml", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is should match wrapped %v", sentinel)
		}
	}
}

func TestErrLanguageAuditMsg(t *testing.T) {
	cause := errors.New("engine exploded")
	err := fmt.Errorf(ErrLanguageAuditMsg, "'de-AT' and 'de'", cause)

	if got, want := err.Error(), "audit language 'de-AT' and 'de': engine exploded"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the engine error")
	}
}
