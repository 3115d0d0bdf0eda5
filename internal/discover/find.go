package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const MaxSearchDepth = 16

var MarkerFiles = []string{
	".git",
	"go.work",
	"go.mod",
	"package.json",
	"pnpm-workspace.yaml",
}

var skipDirs = map[string]bool{
	".git":         true,
	".robotsx":     true,
	"node_modules": true,
}

// IsRobotsFilename matches robots.txt and per-environment variants such as
// robots.staging.txt.
func IsRobotsFilename(name string) bool {
	name = strings.ToLower(name)
	if name == "robots.txt" {
		return true
	}
	return strings.HasPrefix(name, "robots.") && strings.HasSuffix(name, ".txt") && len(name) > len("robots..txt")
}

// FindRoot walks up from dir to the nearest directory holding a project
// marker. Without one, dir itself is returned.
func FindRoot(dir string) (string, error) {
	original, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	dir = original

	for {
		if FindMarker(dir) != "" {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return original, nil
		}
		dir = parent
	}
}

func FindMarker(root string) string {
	for _, marker := range MarkerFiles {
		if _, err := os.Stat(filepath.Join(root, marker)); err == nil {
			return marker
		}
	}
	return ""
}

// FindInParents returns the first robots.txt found in dir or its parents.
func FindInParents(dir string, maxDepth int) (string, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	for i := 0; i < maxDepth; i++ {
		path := filepath.Join(dir, "robots.txt")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("no robots.txt found in current or parent directories (searched up to %d levels)", maxDepth)
}

// Find lists robots files under root as sorted slash-separated relative
// paths. The root .gitignore and the exclude patterns are honored.
func Find(root string, exclude []string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	ignore, err := LoadGitignore(root)
	if err != nil {
		return nil, err
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if skipDirs[d.Name()] || ignore.ShouldIgnore(rel, true) || MatchesExclude(rel, exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsRobotsFilename(d.Name()) {
			return nil
		}
		if ignore.ShouldIgnore(rel, false) || MatchesExclude(rel, exclude) {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}
