package model

import (
	"github.com/spf13/afero"
	"github.com/theandrelima/terraframe/internal/store"
)

// DefaultVariablesFileName is the file scanned for variable declarations
// inside a child module's source directory.
const DefaultVariablesFileName = "variables.tf"

// Project is the explicit context of one conversion run. It owns the entity
// store and carries everything constructors need to resolve file-based fields:
// the filesystem, the project root that module source paths are relative to,
// and the name of the variable-declaration file.
//
// A Project is created per run and passed to every constructive call, so
// independent runs (and tests) never share state.
type Project struct {
	Store *store.Store
	FS    afero.Fs

	// Root is the project directory holding the input YAML and, after
	// materialization, one subdirectory per deployment.
	Root string

	// VariablesFileName is the per-module variable-declaration file name.
	VariablesFileName string
}

// NewProject returns a Project with a fresh store rooted at the given
// directory of the given filesystem.
func NewProject(fsys afero.Fs, root string) *Project {
	return &Project{
		Store:             store.New(),
		FS:                fsys,
		Root:              root,
		VariablesFileName: DefaultVariablesFileName,
	}
}
