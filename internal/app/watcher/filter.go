package watcher

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// filter accepts events for the config file itself or for any file whose base name matches an include glob
type filter struct {
	target string
	globs  []glob.Glob
}

func newFilter(target string, include []string) (*filter, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}

	f := &filter{target: abs}

	for _, pattern := range include {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		f.globs = append(f.globs, g)
	}

	return f, nil
}

func (f *filter) accepts(path string) bool {
	if abs, err := filepath.Abs(path); err == nil && abs == f.target {
		return true
	}

	name := filepath.Base(path)
	if isScratchFile(name) {
		return false
	}

	for _, g := range f.globs {
		if g.Match(name) {
			return true
		}
	}

	return false
}

// isScratchFile reports editor leftovers written next to the real file
func isScratchFile(name string) bool {
	return strings.HasSuffix(name, "~") ||
		strings.HasSuffix(name, ".swp") ||
		strings.HasPrefix(name, ".#")
}
