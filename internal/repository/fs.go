package repository

import "github.com/spf13/afero"

// FileSystemRepository defines the interface for reading header files.

type FileSystemRepository interface {
	afero.Fs
}
