// Package scanner discovers statement export files under a directory tree.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner walks a directory tree and finds statement files.
type Scanner struct {
	rootDir string
}

// New creates a scanner for the given root directory or single file.
func New(rootDir string) *Scanner {
	return &Scanner{rootDir: rootDir}
}

// statement exports arrive as delimited text under a few extensions.
var statementExts = map[string]struct{}{
	".csv": {}, ".txt": {}, ".tsv": {},
}

// Scan returns the paths of all statement files under the root, in walk
// order. A root that is itself a file is returned as-is when it has a
// statement extension.
func (s *Scanner) Scan() ([]string, error) {
	root := expandHome(s.rootDir)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		if !isStatementFile(root) {
			return nil, fmt.Errorf("%s is not a supported statement file (.csv, .txt, .tsv)", root)
		}
		return []string{root}, nil
	}

	var paths []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isStatementFile(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	return paths, nil
}

func isStatementFile(path string) bool {
	_, ok := statementExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
