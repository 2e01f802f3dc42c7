package model_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ragkit/pkg/model"
)

func TestParseAnswers_YAML(t *testing.T) {
	doc := []byte(`
objective: assistant
data_types:
  - personal
  - public
security_level: [sso, encryption]
`)
	cfg, err := model.ParseAnswers(doc, "answers.yaml")
	if err != nil {
		t.Fatalf("parse answers: %v", err)
	}

	want := model.Answers{
		Objective:     "assistant",
		DataTypes:     []string{"personal", "public"},
		SecurityLevel: []string{"sso", "encryption"},
	}
	if diff := cmp.Diff(want, cfg.Answers()); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAnswers_JSON(t *testing.T) {
	doc := []byte(`{"objective":"search","data_types":["public"],"security_level":["minimal"]}`)
	cfg, err := model.ParseAnswers(doc, "answers.json")
	if err != nil {
		t.Fatalf("parse answers: %v", err)
	}
	if cfg.Objective() != model.ObjectiveSearch || !cfg.HasControl(model.ControlMinimal) {
		t.Fatalf("unexpected configuration: %+v", cfg.Answers())
	}
}

func TestParseAnswers_Errors(t *testing.T) {
	if _, err := model.ParseAnswers([]byte("   "), "empty.yaml"); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := model.ParseAnswers([]byte("objective: [unclosed"), "broken.yaml"); err == nil {
		t.Fatalf("expected error for malformed document")
	}
	_, err := model.ParseAnswers([]byte("objective: search\ndata_types: [medical]\n"), "bad.yaml")
	if !errors.Is(err, model.ErrUnknownValue) {
		t.Fatalf("expected ErrUnknownValue, got %v", err)
	}
}

func TestLoadAnswers_RoundTripThroughMarshal(t *testing.T) {
	cfg := model.MustConfiguration("synthesis", []string{"technical", "legal"}, []string{"gdpr", "audit"})

	data, err := model.MarshalAnswers(cfg)
	if err != nil {
		t.Fatalf("marshal answers: %v", err)
	}

	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write answers: %v", err)
	}

	loaded, err := model.LoadAnswers(path)
	if err != nil {
		t.Fatalf("load answers: %v", err)
	}
	if !loaded.Equal(cfg) {
		t.Fatalf("loaded configuration differs: %+v vs %+v", loaded.Answers(), cfg.Answers())
	}
}

func TestLoadAnswers_MissingFile(t *testing.T) {
	if _, err := model.LoadAnswers(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseAnswers_ReportsYAMLCause(t *testing.T) {
	doc := []byte("objective: search\ndata_types:\n  nested: personal\nsecurity_level: [sso]\n")

	_, err := model.ParseAnswers(doc, "answers.yaml")
	if err == nil {
		t.Fatalf("expected error for a mapping where a list is required")
	}
	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected wrapped *yaml.TypeError, got %T: %v", err, err)
	}
}
