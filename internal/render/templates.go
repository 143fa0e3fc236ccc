package render

import (
	"embed"
	"io/fs"

	"github.com/spf13/afero"
)

//go:embed templates
var defaultTemplates embed.FS

// DefaultFS returns the shipped default templates as a filesystem rooted at
// the template files themselves, for use with New(DefaultFS(), "").
func DefaultFS() afero.Fs {
	sub, err := fs.Sub(defaultTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return afero.FromIOFS{FS: sub}
}
