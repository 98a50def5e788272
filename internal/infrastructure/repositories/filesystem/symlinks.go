package filesystem

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// ResolveSymlinks returns path with every symlink evaluated when fs is backed
// by the operating system. afero.Walk does not follow a symlinked root, so
// roots are resolved before walking. Filesystems without symlink support, and
// paths that cannot be resolved, are returned unchanged.
func ResolveSymlinks(fs afero.Fs, path string) string {
	if _, ok := fs.(afero.Symlinker); !ok {
		return path
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
