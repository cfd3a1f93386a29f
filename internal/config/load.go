package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FindConfigFile walks up from the given directory to find quill.toml.
// Returns the absolute path to the config file, or an empty string if
// not found. Stops at the filesystem root.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root.
			return "", nil
		}
		dir = parent
	}
}

// LoadFromFile parses the TOML file at the given path and returns the
// configuration and TOML metadata. The metadata can be used to detect
// unknown keys via MetaData.Undecoded().
func LoadFromFile(path string) (*Config, toml.MetaData, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, md, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, md, nil
}

// Load resolves the effective configuration. An explicit path wins;
// otherwise quill.toml is searched upward from the working directory;
// with neither, defaults apply. The returned path is empty when
// defaults were used. Unknown keys in the file are reported through
// the metadata but are not an error.
func Load(explicitPath string) (*Config, toml.MetaData, string, error) {
	path := explicitPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, toml.MetaData{}, "", fmt.Errorf("getting working directory: %w", err)
		}
		path, err = FindConfigFile(wd)
		if err != nil {
			return nil, toml.MetaData{}, "", err
		}
	}
	if path == "" {
		return Default(), toml.MetaData{}, "", nil
	}

	cfg, md, err := LoadFromFile(path)
	if err != nil {
		return nil, md, path, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, md, path, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, md, path, nil
}

// Save writes the configuration as TOML to the given path, creating or
// truncating the file.
func Save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
