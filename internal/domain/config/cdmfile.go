package config

// CdmFileConfig is the optional project-level cdm.toml.
type CdmFileConfig struct {
	Cache    CacheConfig    `toml:"cache"`
	Registry RegistryConfig `toml:"registry"`
	Bindings BindingsConfig `toml:"bindings"`
}

// CacheConfig configures the local artifact cache.
type CacheConfig struct {
	Root string `toml:"root"`
}

// RegistryConfig configures the local registry host used by `cdm registry`.
type RegistryConfig struct {
	Database string `toml:"database"`
	Caller   string `toml:"caller"`
}

// BindingsConfig configures `cdm bind` output.
type BindingsConfig struct {
	OutDir string `toml:"out_dir"`
}
