package bqddl

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// sweepTimestamp matches the timestamp embedded in generated file names.
var sweepTimestamp = regexp.MustCompile(`_(\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2})`)

// trashDirName is where superseded documents are moved.
const trashDirName = "trash"

// SweepResult reports what a sweep did.
type SweepResult struct {
	// Moved are the superseded document paths moved into the trash
	// directory.
	Moved []string
	// Skipped are diagnostics for .sql files without a parseable embedded
	// timestamp.
	Skipped []string
}

// SweepOutputs walks an output tree and keeps only the newest generated
// document per base name in each directory, moving older ones into
// <rootDir>/trash. Files without the embedded timestamp are left in place
// and reported in Skipped.
func SweepOutputs(rootDir string) (*SweepResult, error) {
	trashDir := filepath.Join(rootDir, trashDirName)

	type entry struct {
		ts   time.Time
		path string
	}
	// Grouped per containing directory, then per base name before the
	// timestamp, mirroring how documents are generated.
	groups := make(map[string][]entry)
	result := &SweepResult{}

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == trashDir {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if !isGeneratedDocument(name) {
			return nil
		}
		m := sweepTimestamp.FindStringSubmatch(name)
		if m == nil {
			result.Skipped = append(result.Skipped,
				fmt.Sprintf("skipping %s: missing or invalid timestamp", name))
			return nil
		}
		ts, parseErr := time.Parse(outputTimestampFormat, m[1])
		if parseErr != nil {
			result.Skipped = append(result.Skipped,
				fmt.Sprintf("skipping %s: missing or invalid timestamp", name))
			return nil
		}
		base, _, _ := strings.Cut(name, "_")
		key := filepath.Dir(path) + "\x00" + base
		groups[key] = append(groups[key], entry{ts: ts, path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", rootDir, err)
	}

	for _, entries := range groups {
		if len(entries) < 2 {
			continue
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].ts.After(entries[j].ts)
		})
		for _, old := range entries[1:] {
			if err := os.MkdirAll(trashDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create trash directory: %w", err)
			}
			dest := filepath.Join(trashDir, filepath.Base(old.path))
			if err := os.Rename(old.path, dest); err != nil {
				return nil, fmt.Errorf("failed to move %s to trash: %w", old.path, err)
			}
			result.Moved = append(result.Moved, old.path)
		}
	}
	return result, nil
}

// isGeneratedDocument reports whether a file name looks like a generated
// document, allowing for compressed output extensions.
func isGeneratedDocument(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range []string{extGZ, extXZ, extZSTD} {
		name = strings.TrimSuffix(name, ext)
	}
	return strings.HasSuffix(name, ".sql")
}
