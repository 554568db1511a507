package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() is invalid: %v", err)
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if cfg.ObjectCount != Default().ObjectCount {
		t.Errorf("expected default ObjectCount, got %d", cfg.ObjectCount)
	}
}

func TestLoadValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	doc := "objectCount: 3\nchunkDurationMs: 500\ncacheCapacity: 2\ncanvasWidth: 320\ncanvasHeight: 240\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := Load(path)
	if cfg.ObjectCount != 3 || cfg.ChunkDurationMs != 500 || cfg.CacheCapacity != 2 {
		t.Errorf("loaded config = %+v, want overrides applied", cfg)
	}
}

func TestLoadMalformedFileFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("objectCount: [unterminated"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := Load(path)
	if cfg.ObjectCount != Default().ObjectCount {
		t.Errorf("expected default fallback on parse error, got %+v", cfg)
	}
}

func TestValidateRejectsNonPositiveChunkDuration(t *testing.T) {
	cfg := Default()
	cfg.ChunkDurationMs = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero chunkDurationMs")
	}
}
