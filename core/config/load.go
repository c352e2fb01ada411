package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads the configuration file at path over the defaults and validates
// it. If the file doesn't exist the error wraps fs.ErrNotExist.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	configContents, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}

	out.configFs = fsys
	return out, nil
}

// LoadOrDefault is like Load but returns the defaults if the file is missing.
func LoadOrDefault(fsys afero.Fs, path string) (*Configuration, error) {
	cfg, err := Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		cfg.configFs = fsys
		return cfg, nil
	}
	return cfg, err
}

// Initialize writes the default configuration to path, it won't overwrite
// an existing file.
func Initialize(fsys afero.Fs, path string, logger *log.Logger) error {
	logger.Printf("Creating configuration at %q\n", path)

	fd, err := fsys.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("couldn't create configuration: %w", err)
	}
	defer fd.Close()

	if _, err := fd.Write(defaultConfigData); err != nil {
		return err
	}

	logger.Println("Configuration written, edit it to customize the shell.")
	return fd.Close()
}
