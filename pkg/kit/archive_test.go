package kit_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ragkit/pkg/kit"
	"github.com/goliatone/go-ragkit/pkg/model"
	"github.com/goliatone/go-ragkit/pkg/testsupport"
)

func TestGenerateKit_ContainsThreeNonEmptyFilesInOrder(t *testing.T) {
	configs := []model.Configuration{
		{},
		model.MustConfiguration("search", []string{"personal", "public"}, []string{"sso", "encryption"}),
		model.MustConfiguration("search", []string{"public"}, []string{"minimal"}),
		model.MustConfiguration("analysis", []string{"hr", "legal", "financial", "personal", "public", "technical"},
			[]string{"sso", "audit", "encryption", "rbac", "gdpr", "minimal"}),
	}

	tempBase := t.TempDir()
	gen := newGenerator(t, kit.WithTempDir(tempBase))

	for _, cfg := range configs {
		archive, err := gen.GenerateKit(cfg)
		if err != nil {
			t.Fatalf("generate kit for %+v: %v", cfg.Answers(), err)
		}

		entries := testsupport.ReadArchive(t, archive)
		if diff := cmp.Diff(kit.ArtifactNames(), names(entries)); diff != "" {
			t.Fatalf("archive entries mismatch (-want +got):\n%s", diff)
		}
		for _, entry := range entries {
			if strings.TrimSpace(entry.Content) == "" {
				t.Fatalf("archive entry %s is empty", entry.Name)
			}
		}
		testsupport.AssertEmptyDir(t, tempBase)
	}
}

func TestGenerateKit_ArchiveMatchesRenderedArtifacts(t *testing.T) {
	gen := newGenerator(t, kit.WithTempDir(t.TempDir()))
	cfg := model.MustConfiguration("assistant", []string{"financial"}, []string{"encryption", "sso"})

	archive, err := gen.GenerateKit(cfg)
	if err != nil {
		t.Fatalf("generate kit: %v", err)
	}
	artifacts, err := gen.Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	entries := testsupport.ReadArchive(t, archive)
	for i, artifact := range artifacts {
		if diff := cmp.Diff(string(artifact.Content), entries[i].Content); diff != "" {
			t.Fatalf("%s mismatch (-rendered +archived):\n%s", artifact.Name, diff)
		}
	}
}

func TestGenerateKit_RepeatedCallsKeepOrder(t *testing.T) {
	gen := newGenerator(t, kit.WithTempDir(t.TempDir()))
	cfg := model.MustConfiguration("synthesis", []string{"technical"}, []string{"rbac"})

	for i := 0; i < 3; i++ {
		archive, err := gen.GenerateKit(cfg)
		if err != nil {
			t.Fatalf("generate kit: %v", err)
		}
		if diff := cmp.Diff(kit.ArtifactNames(), testsupport.ArchiveNames(t, archive)); diff != "" {
			t.Fatalf("call %d order mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestGenerateKit_FailureCleansUpAndReturnsNothing(t *testing.T) {
	tempBase := t.TempDir()
	gen := newGenerator(t,
		kit.WithTempDir(tempBase),
		kit.WithTemplateDir(filepath.Join("testdata", "broken")),
	)

	archive, err := gen.GenerateKit(model.MustConfiguration("search", []string{"public"}, []string{"sso"}))
	if err == nil {
		t.Fatalf("expected generation failure")
	}
	if !errors.Is(err, kit.ErrGeneration) || !errors.Is(err, kit.ErrMalformedArtifact) {
		t.Fatalf("expected ErrGeneration wrapping ErrMalformedArtifact, got %v", err)
	}
	if archive != nil {
		t.Fatalf("expected no archive bytes on failure, got %d", len(archive))
	}
	testsupport.AssertEmptyDir(t, tempBase)
}

func TestGenerateKit_StagingDirFailure(t *testing.T) {
	notADir := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(notADir, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	gen := newGenerator(t, kit.WithTempDir(notADir))
	archive, err := gen.GenerateKit(model.Configuration{})
	if !errors.Is(err, kit.ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	if archive != nil {
		t.Fatalf("expected no archive bytes")
	}
}

func TestGenerateKitTo_WritesNothingOnFailure(t *testing.T) {
	gen := newGenerator(t,
		kit.WithTempDir(t.TempDir()),
		kit.WithTemplateDir(filepath.Join("testdata", "broken")),
	)

	var buf bytes.Buffer
	if err := gen.GenerateKitTo(model.Configuration{}, &buf); err == nil {
		t.Fatalf("expected failure")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected empty writer, got %d bytes", buf.Len())
	}

	ok := newGenerator(t, kit.WithTempDir(t.TempDir()))
	if err := ok.GenerateKitTo(model.Configuration{}, &buf); err != nil {
		t.Fatalf("generate kit to writer: %v", err)
	}
	if diff := cmp.Diff(kit.ArtifactNames(), testsupport.ArchiveNames(t, buf.Bytes())); diff != "" {
		t.Fatalf("archive entries mismatch (-want +got):\n%s", diff)
	}
}

func names(entries []testsupport.ArchiveEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Name)
	}
	return out
}
