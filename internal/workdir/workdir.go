// Package workdir resolves the directory daypick keeps its .daypick settings
// in, so commands run from a subdirectory share the project's settings.
package workdir

import (
	"os"
	"path/filepath"
)

const settingsDir = ".daypick"

// ResolveBaseDir walks up from baseDir to the nearest directory holding a
// .daypick directory. If none is found, baseDir is returned unchanged.
func ResolveBaseDir(baseDir string) string {
	dir, err := filepath.Abs(baseDir)
	if err != nil {
		return baseDir
	}
	for {
		if fi, err := os.Stat(filepath.Join(dir, settingsDir)); err == nil && fi.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return baseDir
		}
		dir = parent
	}
}
