package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover returns the dataset files under base matching the glob pattern
// (doublestar syntax, e.g. "data/**/*.json"), sorted and joined with base.
func Discover(base, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(base), pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(base, filepath.FromSlash(m)))
	}
	sort.Strings(paths)
	return paths, nil
}
