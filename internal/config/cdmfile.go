package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/dotdm/cdm/internal/domain/config"
)

// CdmFileName is the optional project-level settings file.
const CdmFileName = "cdm.toml"

// loadCdmFile loads and parses cdm.toml if it exists.
// Returns (nil, nil) when cdm.toml does not exist.
func loadCdmFile(projectRoot string) (*config.CdmFileConfig, error) {
	path := filepath.Join(projectRoot, CdmFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.CdmFileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", CdmFileName, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", CdmFileName, strings.Join(keys, ", "))
	}

	// Expand environment variables in path-like fields
	cfg.Cache.Root = os.ExpandEnv(cfg.Cache.Root)
	cfg.Registry.Database = os.ExpandEnv(cfg.Registry.Database)
	cfg.Registry.Caller = os.ExpandEnv(cfg.Registry.Caller)
	cfg.Bindings.OutDir = os.ExpandEnv(cfg.Bindings.OutDir)

	return &cfg, nil
}

// loadDotEnv loads .env files from the project root without overriding
// variables already present in the environment.
func loadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}
