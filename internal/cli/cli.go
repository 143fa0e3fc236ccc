// Package cli wires the terraframe command line: flag parsing, configuration
// assembly, and exit-code handling around one conversion run.
package cli

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/theandrelima/terraframe/internal/app"
	"github.com/theandrelima/terraframe/internal/materialize"
	"github.com/theandrelima/terraframe/internal/model"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// NewRootCommand builds the terraframe root command. Log output goes to logW;
// file access goes through fsys.
func NewRootCommand(logW io.Writer, fsys afero.Fs) *cobra.Command {
	var cfg app.Config

	cmd := &cobra.Command{
		Use:   "terraframe [project-path]",
		Short: "Generate Terraform deployment directories from a declarative YAML project description",
		Long: `terraframe reads a project YAML file describing deployments, child modules
and remote states, and generates one directory of Terraform files per
deployment plus a project-level scaffold of the variables left to fill in.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ProjectPath = args[0]
			conf, err := app.NewConfig(cfg)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			return app.New(logW, fsys, conf).Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.FileName, "file", "f", app.DefaultFileName, "project YAML file name inside the project path")
	flags.StringVarP(&cfg.TemplatesDir, "templates", "t", "", "directory of .tmpl files overriding the built-in templates")
	flags.StringVar(&cfg.MainFileName, "main-file", materialize.DefaultMainFileName, "generated main file name per deployment")
	flags.StringVar(&cfg.VariablesFileName, "variables-file", model.DefaultVariablesFileName, "variable-declaration file name, both scanned in modules and generated per deployment")
	flags.StringVar(&cfg.TfvarsFileName, "tfvars-file", materialize.DefaultTfvarsFileName, "empty tfvars scaffold file name per deployment; empty disables it")
	flags.StringVar(&cfg.ScaffoldFileName, "scaffold-file", materialize.DefaultScaffoldFileName, "project-level YAML variable scaffold file name")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "log level: 'debug', 'info', 'warn' or 'error'")
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "log output format: 'text' or 'json'")

	return cmd
}
