// Package scanner discovers the compilation units below a source root.
package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo describes one discovered unit. Path is relative to the root and
// uses forward slashes.
type FileInfo struct {
	Path string
	Size int64
}

type Scanner struct {
	rootDir    string
	extensions []string
	excluded   map[string]bool
}

func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
		excluded:   make(map[string]bool),
	}
}

// Exclude skips the given directories and everything below them.
func (s *Scanner) Exclude(dirs ...string) *Scanner {
	for _, dir := range dirs {
		if abs, err := filepath.Abs(dir); err == nil {
			s.excluded[abs] = true
		}
	}
	return s
}

// Scan walks the root and returns the matching files sorted by path.
// Hidden directories are not entered.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != s.rootDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if abs, err := filepath.Abs(path); err == nil && s.excluded[abs] {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.isTargetFile(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return err
		}
		files = append(files, FileInfo{
			Path: filepath.ToSlash(rel),
			Size: info.Size(),
		})
		return nil
	})

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, err
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
