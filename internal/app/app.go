package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/theandrelima/terraframe/internal/ctxlog"
	"github.com/theandrelima/terraframe/internal/loader"
	"github.com/theandrelima/terraframe/internal/materialize"
	"github.com/theandrelima/terraframe/internal/model"
	"github.com/theandrelima/terraframe/internal/render"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle for one conversion run.
type App struct {
	fsys   afero.Fs
	logger *slog.Logger
	config *Config
}

// New is the constructor for the main application. Log output goes to logW;
// all file access goes through fsys, so tests can run against a memory
// filesystem.
func New(logW io.Writer, fsys afero.Fs, cfg *Config) *App {
	return &App{
		fsys:   fsys,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		config: cfg,
	}
}

// Run executes one conversion: read and load the project YAML into a fresh
// store, then materialize every deployment. Any error aborts the run; there
// is no partial-success mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config

	yamlPath := filepath.Join(cfg.ProjectPath, cfg.FileName)
	f, err := a.fsys.Open(yamlPath)
	if err != nil {
		return fmt.Errorf("opening project file %s: %w", yamlPath, err)
	}
	defer f.Close()

	project := model.NewProject(a.fsys, cfg.ProjectPath)
	project.VariablesFileName = cfg.VariablesFileName

	a.logger.Debug("Loading project description.", "path", yamlPath)
	if err := loader.Load(ctx, project, model.DefaultRegistry(), f); err != nil {
		return err
	}

	renderer := a.newRenderer()
	mat := materialize.New(renderer)
	mat.MainFileName = cfg.MainFileName
	mat.VariablesFileName = cfg.VariablesFileName
	mat.TfvarsFileName = cfg.TfvarsFileName
	mat.ScaffoldFileName = cfg.ScaffoldFileName

	return mat.Run(ctx, project)
}

// newRenderer picks the configured template directory, falling back to the
// embedded default templates.
func (a *App) newRenderer() *render.Renderer {
	if a.config.TemplatesDir != "" {
		return render.New(a.fsys, a.config.TemplatesDir)
	}
	return render.New(render.DefaultFS(), "")
}
