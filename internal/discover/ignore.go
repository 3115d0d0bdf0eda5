package discover

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type ignoreRule struct {
	pattern string // doublestar syntax, forward slashes
	dirOnly bool   // trailing slash
	anchor  bool   // leading slash
}

// IgnoreMatcher applies the rules of a root .gitignore. A nil matcher
// ignores nothing.
type IgnoreMatcher struct {
	rules []ignoreRule
}

func parseIgnoreFile(path string) ([]ignoreRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var rules []ignoreRule
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		dirOnly := strings.HasSuffix(line, "/")
		line = strings.TrimSuffix(line, "/")

		anchor := strings.HasPrefix(line, "/")
		line = strings.TrimPrefix(line, "/")

		if line == "" {
			continue
		}

		rules = append(rules, ignoreRule{pattern: filepath.ToSlash(line), dirOnly: dirOnly, anchor: anchor})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return rules, nil
}

func LoadGitignore(root string) (*IgnoreMatcher, error) {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat .gitignore: %w", err)
	}

	rules, err := parseIgnoreFile(path)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}

	return &IgnoreMatcher{rules: rules}, nil
}

func (m *IgnoreMatcher) ShouldIgnore(relPath string, isDir bool) bool {
	if m == nil {
		return false
	}

	relPath = strings.TrimPrefix(filepath.ToSlash(relPath), "/")

	for _, r := range m.rules {
		if r.dirOnly && !isDir {
			continue
		}

		if r.anchor {
			if relPath == r.pattern || strings.HasPrefix(relPath, r.pattern+"/") {
				return true
			}
			if ok, _ := doublestar.Match(r.pattern, relPath); ok {
				return true
			}
			continue
		}

		if ok, _ := doublestar.Match(r.pattern, relPath); ok {
			return true
		}
		// unanchored patterns without a slash match at any depth
		if !strings.Contains(r.pattern, "/") {
			if ok, _ := doublestar.Match(r.pattern, filepath.Base(relPath)); ok {
				return true
			}
		}
	}

	return false
}

// MatchesExclude reports whether relPath matches one of the doublestar
// patterns, either as a whole path or by base name.
func MatchesExclude(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)
	base := filepath.Base(relPath)
	for _, p := range patterns {
		if p == "" {
			continue
		}
		p = filepath.ToSlash(p)
		if ok, err := doublestar.Match(p, relPath); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}
