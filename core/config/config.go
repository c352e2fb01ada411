package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	// ConfigurationName is the name of the configuration file in the user's
	// home directory.
	ConfigurationName = ".dcshell.conf"

	// EnvConfigPath overrides the default configuration path.
	EnvConfigPath = "DC_SHELL_CONFIG"
)

// Mode values for settings that depend on whether a stream is a terminal.
const (
	ModeAlways = "always"
	ModeAuto   = "auto"
	ModeNever  = "never"
)

type Configuration struct {
	configFs afero.Fs

	Verbose          bool   `json:"verbose"`
	Color            string `json:"color" validate:"oneof=always auto never"`
	LineEditing      string `json:"line_editing" validate:"oneof=always auto never"`
	HistoryFile      string `json:"history_file"`
	LogPath          string `json:"log_path"`
	ParseErrorsFatal bool   `json:"parse_errors_fatal"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// Enabled resolves a mode setting, isTerminal is consulted for auto.
func Enabled(mode string, isTerminal func() bool) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return isTerminal()
	}
}

// ExpandHome replaces a leading ~ in path with home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenLog opens the log file in an append only state. It returns nil if no
// log path is configured.
func (c *Configuration) OpenLog(home string) (afero.File, error) {
	if c.LogPath == "" {
		return nil, nil
	}
	return c.fs().OpenFile(ExpandHome(c.LogPath, home), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// DefaultPath gets the configuration path from the environment, falling back
// to the file in the user's home directory.
func DefaultPath(getenv func(string) string, home string) string {
	if path := getenv(EnvConfigPath); path != "" {
		return path
	}
	return filepath.Join(home, ConfigurationName)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
