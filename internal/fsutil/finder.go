// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"

	"github.com/spf13/afero"
)

// FindFilesByName recursively searches the given root path for all files with
// exactly the specified name. It returns a slice of their full paths.
func FindFilesByName(fsys afero.Fs, rootPath string, name string) ([]string, error) {
	if name == "" {
		panic("name must not be empty")
	}

	var files []string
	err := afero.Walk(fsys, rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.Name() == name {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
