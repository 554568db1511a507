// Package config loads and defaults the engine's tunables.
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig is the engine's full set of tunables, loaded from a YAML
// file or defaulted when none is present.
type EngineConfig struct {
	ObjectCount        int     `yaml:"objectCount"`
	KeyframesPerObject int     `yaml:"keyframesPerObject"`
	ChunkDurationMs    float32 `yaml:"chunkDurationMs"`
	CacheCapacity      int     `yaml:"cacheCapacity"`
	CanvasWidth        int     `yaml:"canvasWidth"`
	CanvasHeight       int     `yaml:"canvasHeight"`
	Verbose            bool    `yaml:"verbose"`

	// PersistPath is where the gdata-backed block store keeps its save
	// file. Empty selects the in-memory store instead (headless runs,
	// tests).
	PersistPath string `yaml:"persistPath"`
}

// Default returns the engine's built-in configuration.
func Default() *EngineConfig {
	return &EngineConfig{
		ObjectCount:        16,
		KeyframesPerObject: 40,
		ChunkDurationMs:    1000,
		CacheCapacity:      4,
		CanvasWidth:        640,
		CanvasHeight:       480,
		Verbose:            false,
		PersistPath:        "",
	}
}

// Load reads a YAML config file at path. A missing file or a parse
// error is not fatal: it logs a warning and falls back to Default.
func Load(path string) *EngineConfig {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[Config] no config at %s, using defaults: %v", path, err)
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("[Config] failed to parse %s, using defaults: %v", path, err)
		return Default()
	}

	log.Printf("[Config] loaded %s", path)
	return cfg
}

// TotalDurationMs derives the length of one full pattern loop as
// KeyframesPerObject chunk_duration slices. The default random-walk
// generator samples every 250 ms, so the track holds
// ChunkDurationMs/250 keyframes per slice rather than one.
func (c *EngineConfig) TotalDurationMs() float32 {
	if c.KeyframesPerObject <= 0 {
		return c.ChunkDurationMs
	}
	return float32(c.KeyframesPerObject) * c.ChunkDurationMs
}

// Validate reports the first structurally invalid field, if any.
func (c *EngineConfig) Validate() error {
	if c.ChunkDurationMs <= 0 {
		return fmt.Errorf("config: chunkDurationMs must be positive, got %v", c.ChunkDurationMs)
	}
	if c.CacheCapacity <= 0 {
		return fmt.Errorf("config: cacheCapacity must be positive, got %d", c.CacheCapacity)
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("config: canvas dimensions must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	return nil
}
