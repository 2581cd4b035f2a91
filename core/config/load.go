package config

import (
	"errors"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	out.configFs = afero.NewBasePathFs(fsys, path)
	out.configDir = path

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Initialize writes the default configuration into the directory unless
// one already exists, then loads whatever is there.
func Initialize(fsys afero.Fs, path string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(path, ConfigurationName)

	switch _, err := fsys.Stat(configPath); {
	case err == nil:
		logger.Printf("Configuration already exists at %q, leaving it alone", configPath)
	case errors.Is(err, fs.ErrNotExist):
		logger.Printf("Writing default configuration to %q", configPath)
		if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return Load(fsys, path)
}
