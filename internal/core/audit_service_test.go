package core

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/EmundoT/variant-audit/internal/types"
	"github.com/golang/mock/gomock"
)

// ============================================================================
// Test stubs
// ============================================================================

// stubDefinitionStore implements DefinitionStore from an in-memory map.
type stubDefinitionStore struct {
	defs map[string]*types.PackageDefinition
}

func (s *stubDefinitionStore) Load(path string) (*types.PackageDefinition, error) {
	def, ok := s.defs[path]
	if !ok {
		return nil, ErrDefinitionNotFound
	}
	return def, nil
}

// newTestAuditService creates an AuditService with a fixed clock and ID.
func newTestAuditService(store DefinitionStore, engine ValidationEngine) *AuditService {
	svc := NewAuditService(store, engine, nil)
	svc.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	svc.newID = func() string { return "test-id" }
	return svc
}

// ============================================================================
// Tests
// ============================================================================

func TestAuditService_MixedOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clean := newTestDefinition("clean")
	warned := newTestDefinition("warned")
	failed := newTestDefinition("failed")
	store := &stubDefinitionStore{defs: map[string]*types.PackageDefinition{
		"clean.yml": clean, "warned.yml": warned, "failed.yml": failed,
	}}

	engine := NewMockValidationEngine(ctrl)
	engine.EXPECT().Run(gomock.Any(), clean, gomock.Any(), gomock.Any()).Return(NewReport("clean"), nil)
	engine.EXPECT().Run(gomock.Any(), warned, gomock.Any(), gomock.Any()).Return(reportWith("warned", []string{"w"}, nil), nil)
	engine.EXPECT().Run(gomock.Any(), failed, gomock.Any(), gomock.Any()).Return(reportWith("failed", nil, []string{"e"}), nil)

	result, err := newTestAuditService(store, engine).AuditFiles(context.Background(),
		[]string{"clean.yml", "warned.yml", "failed.yml", "missing.yml"}, AuditOptions{})
	if err != nil {
		t.Fatalf("AuditFiles() unexpected error: %v", err)
	}

	if result.AuditID != "test-id" || result.Timestamp != "2025-01-02T03:04:05Z" {
		t.Errorf("AuditFiles() id=%q timestamp=%q", result.AuditID, result.Timestamp)
	}
	wantResults := []string{types.AuditResultPass, types.AuditResultWarn, types.AuditResultFail, types.AuditResultFail}
	for i, d := range result.Definitions {
		if d.Result != wantResults[i] {
			t.Errorf("Definitions[%d].Result = %q, want %q", i, d.Result, wantResults[i])
		}
	}
	if !strings.Contains(result.Definitions[3].Error, "missing.yml") {
		t.Errorf("load failure error = %q, want it to name the file", result.Definitions[3].Error)
	}

	want := types.AuditSummary{Result: types.AuditResultFail, Definitions: 4, Passed: 1, Warned: 1, Failed: 2}
	if result.Summary != want {
		t.Errorf("Summary = %+v, want %+v", result.Summary, want)
	}
}

func TestAuditService_EngineFailureDoesNotAbortOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := newLocalizedDefinition("first", "en", "de")
	second := newTestDefinition("second")
	store := &stubDefinitionStore{defs: map[string]*types.PackageDefinition{"first.yml": first, "second.yml": second}}

	engine := NewMockValidationEngine(ctrl)
	gomock.InOrder(
		engine.EXPECT().Run(gomock.Any(), first, gomock.Any(), gomock.Any()).Return(reportWith("first", []string{"lost"}, nil), nil),
		engine.EXPECT().Run(gomock.Any(), first, gomock.Any(), gomock.Any()).Return(nil, errors.New("network down")),
		engine.EXPECT().Run(gomock.Any(), second, gomock.Any(), gomock.Any()).Return(NewReport("second"), nil),
	)

	result, err := newTestAuditService(store, engine).AuditFiles(context.Background(),
		[]string{"first.yml", "second.yml"}, AuditOptions{})
	if err != nil {
		t.Fatalf("AuditFiles() unexpected error: %v", err)
	}

	got := result.Definitions[0]
	if got.Result != types.AuditResultFail || !strings.Contains(got.Error, "network down") {
		t.Errorf("Definitions[0] = %+v, want FAIL with engine error", got)
	}
	if got.Warnings.Len() != 0 {
		t.Errorf("Definitions[0].Warnings = %v, want partial results dropped", got.Warnings.Sorted())
	}
	if result.Definitions[1].Result != types.AuditResultPass {
		t.Errorf("Definitions[1].Result = %q, want PASS", result.Definitions[1].Result)
	}
}

func TestAuditService_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestAuditService(&stubDefinitionStore{}, NewCheckEngine())
	if _, err := svc.AuditFiles(ctx, []string{"a.yml"}, AuditOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("AuditFiles() error = %v, want context.Canceled", err)
	}
}

func TestAuditService_WithFileStoreAndCheckEngine(t *testing.T) {
	path := writeDefinition(t, "firefox.yml", localizedYAML)

	svc := newTestAuditService(NewFileDefinitionStore(types.Config{}), NewCheckEngine())
	result, err := svc.AuditFiles(context.Background(), []string{path}, AuditOptions{})
	if err != nil {
		t.Fatalf("AuditFiles() unexpected error: %v", err)
	}
	d := result.Definitions[0]
	if d.Token != "firefox" || d.Result != types.AuditResultPass {
		t.Errorf("Definitions[0] = %+v, want PASS for firefox", d)
	}
	if filepath.Base(d.Source) != "firefox.yml" {
		t.Errorf("Definitions[0].Source = %q", d.Source)
	}
}

func TestFormatAuditTable(t *testing.T) {
	result := &types.AuditResult{
		Definitions: []types.DefinitionResult{
			{Token: "ok", Result: types.AuditResultPass, Warnings: types.NewSet(), Errors: types.NewSet()},
			{Source: "broken.yml", Result: types.AuditResultFail, Error: "load broken.yml: definition file not found"},
		},
		Summary: types.AuditSummary{Result: types.AuditResultFail, Definitions: 2, Passed: 1, Failed: 1},
	}

	out := FormatAuditTable(result)
	for _, want := range []string{
		"=== Audit Report ===",
		"ok ",
		"PASS (0 errors, 0 warnings)",
		"broken.yml",
		"FAIL (load broken.yml: definition file not found)",
		"Result: FAIL (2 definitions: 1 passed, 0 warned, 1 failed)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatAuditTable() missing %q in:\n%s", want, out)
		}
	}
}
