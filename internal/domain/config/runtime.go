package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	WorkDir      string // directory resolution starts from
	ProjectRoot  string // directory holding the manifest, or WorkDir when none was found
	ManifestPath string // empty when no manifest was found
	DataDir      string // <ProjectRoot>/.cdm

	// Artifact cache and bindings
	CacheRoot   string
	BindingsDir string

	// Local registry host; empty RegistryDB selects an in-memory registry
	RegistryDB string
	Caller     string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration

	// Config source tracking
	ConfigSource string // "cdm.toml" or "defaults"
	CdmFile      *CdmFileConfig
}
