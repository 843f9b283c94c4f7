package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DirStats counts what a directory walk saw.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
}

// ListPDFs walks root and returns the sorted paths of every file with an
// allowed extension, skipping hidden files and directories if requested.
// Unreadable entries are counted as failed and the walk continues.
func ListPDFs(root string, skipHidden bool) ([]string, DirStats, error) {
	var stats DirStats
	if strings.TrimSpace(root) == "" {
		return nil, stats, errors.New("root path is required")
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			stats.Failed++
			return nil // continue walking
		}
		stats.Scanned++
		// the root itself is never skipped, even when it is "."
		if path != root && skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("walk: %w", err)
	}

	sort.Strings(paths)
	return paths, stats, nil
}
