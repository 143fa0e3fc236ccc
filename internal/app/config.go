package app

import (
	"errors"

	"github.com/theandrelima/terraframe/internal/materialize"
	"github.com/theandrelima/terraframe/internal/model"
)

// DefaultFileName is the project description file read from the project root.
const DefaultFileName = "terraframe.yaml"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ProjectPath is the directory holding the project YAML; generated
	// deployment directories are created under it.
	ProjectPath string

	// FileName is the project YAML file name inside ProjectPath.
	FileName string

	// TemplatesDir points at a directory of .tmpl files overriding the
	// shipped defaults. Empty means the embedded templates.
	TemplatesDir string

	MainFileName      string
	VariablesFileName string
	TfvarsFileName    string
	ScaffoldFileName  string

	LogFormat string
	LogLevel  string
}

// NewConfig validates the configuration and fills unset file names with their
// defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	if cfg.FileName == "" {
		cfg.FileName = DefaultFileName
	}
	if cfg.MainFileName == "" {
		cfg.MainFileName = materialize.DefaultMainFileName
	}
	if cfg.VariablesFileName == "" {
		cfg.VariablesFileName = model.DefaultVariablesFileName
	}
	if cfg.ScaffoldFileName == "" {
		cfg.ScaffoldFileName = materialize.DefaultScaffoldFileName
	}
	return &cfg, nil
}
