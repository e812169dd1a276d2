package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/config"
)

// Viper keys
const (
	KeyDir            = "dir"
	KeyCacheRoot      = "cache_root"
	KeyRegistryDB     = "registry_db"
	KeyCaller         = "caller"
	KeyBindingsDir    = "bindings_dir"
	KeyDebug          = "debug"
	KeyNonInteractive = "non_interactive"
	KeyJSON           = "json"
	KeyTimeout        = "timeout"
)

const (
	// DefaultBindingsDir is relative to the project root
	DefaultBindingsDir = "cdm_bindings"
	dataDirName        = ".cdm"
	registryDBName     = "registry.db"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	workDir := v.GetString(KeyDir)
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		workDir = wd
	}
	workDir, err := filepath.Abs(expandHome(workDir))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", workDir, err)
	}

	// The project root is the manifest directory; commands that create the
	// manifest fall back to the working directory.
	projectRoot := workDir
	manifestPath, err := FindManifest(workDir)
	switch {
	case err == nil:
		projectRoot = filepath.Dir(manifestPath)
	case errors.Is(err, domain.ErrManifestNotFound):
		manifestPath = ""
	default:
		return nil, err
	}

	loadDotEnv(projectRoot)

	cdmFile, err := loadCdmFile(projectRoot)
	if err != nil {
		return nil, err
	}
	source := "defaults"
	if cdmFile != nil {
		source = CdmFileName
		applyCdmFile(v, cdmFile)
	}

	cfg := &config.RuntimeConfig{
		WorkDir:        workDir,
		ProjectRoot:    projectRoot,
		ManifestPath:   manifestPath,
		DataDir:        filepath.Join(projectRoot, dataDirName),
		Caller:         v.GetString(KeyCaller),
		Debug:          v.GetBool(KeyDebug),
		NonInteractive: v.GetBool(KeyNonInteractive),
		JSON:           v.GetBool(KeyJSON),
		Timeout:        v.GetDuration(KeyTimeout),
		ConfigSource:   source,
		CdmFile:        cdmFile,
	}

	cfg.CacheRoot = v.GetString(KeyCacheRoot)
	if cfg.CacheRoot == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory for the artifact cache: %w", err)
		}
		cfg.CacheRoot = filepath.Join(home, dataDirName)
	}
	cfg.CacheRoot = absUnder(projectRoot, expandHome(cfg.CacheRoot))

	cfg.RegistryDB = v.GetString(KeyRegistryDB)
	if cfg.RegistryDB == "" {
		cfg.RegistryDB = filepath.Join(cfg.DataDir, registryDBName)
	}
	if cfg.RegistryDB != ":memory:" {
		cfg.RegistryDB = absUnder(projectRoot, expandHome(cfg.RegistryDB))
	}

	cfg.BindingsDir = absUnder(projectRoot, expandHome(v.GetString(KeyBindingsDir)))

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("CDM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault(KeyTimeout, "5m")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyNonInteractive, false)
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyBindingsDir, DefaultBindingsDir)
	v.SetDefault(KeyCacheRoot, "")
	v.SetDefault(KeyRegistryDB, "")
	v.SetDefault(KeyCaller, "")

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}

// applyCdmFile layers cdm.toml values between explicit settings and defaults.
func applyCdmFile(v *viper.Viper, f *config.CdmFileConfig) {
	if f.Cache.Root != "" {
		v.SetDefault(KeyCacheRoot, f.Cache.Root)
	}
	if f.Registry.Database != "" {
		v.SetDefault(KeyRegistryDB, f.Registry.Database)
	}
	if f.Registry.Caller != "" {
		v.SetDefault(KeyCaller, f.Registry.Caller)
	}
	if f.Bindings.OutDir != "" {
		v.SetDefault(KeyBindingsDir, f.Bindings.OutDir)
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// absUnder resolves a relative path against base.
func absUnder(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
