package config

import (
	_ "embed"
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
	ConfigurationName = "config.yaml"

	// DefaultPrompt is used when the configured prompt is blank.
	DefaultPrompt = "simplesh> "
)

type Configuration struct {
	configFs  afero.Fs
	configDir string

	Prompt      string `json:"prompt" validate:"required"`
	HistoryFile string `json:"history_file"`
	LogDir      string `json:"log_dir" validate:"required"`
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

// CreateSessionLog creates an event log with the given name under the
// configured log directory.
func (c *Configuration) CreateSessionLog(name string) (afero.File, error) {
	if err := c.fs().MkdirAll(c.LogDir, 0700); err != nil {
		return nil, err
	}
	return c.fs().Create(filepath.Join(c.LogDir, name))
}

// HistoryPath is the path of the readline history file relative to the
// process's working directory, or empty if history is disabled.
func (c *Configuration) HistoryPath() string {
	if c.HistoryFile == "" {
		return ""
	}
	return filepath.Join(c.configDir, c.HistoryFile)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
