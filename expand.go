package litegrep

import (
	"io/fs"
	"os"
	"path/filepath"
)

// ExpandTargets turns the configured targets into the concrete list of file
// paths to scan, preserving target order.
//
// In non-recursive mode every target passes through verbatim, even if it
// names a directory; the mistake surfaces later as a per-file read error.
// In recursive mode a directory target is replaced by every regular file
// reachable under it, in traversal order; anything else passes through
// verbatim. Missing paths are never an error here.
func ExpandTargets(targets []string, recursive bool) []string {
	if !recursive {
		return append([]string(nil), targets...)
	}

	var files []string
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil || !info.IsDir() {
			files = append(files, target)
			continue
		}

		before := len(files)
		_ = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped; if the user named them
				// directly they fail at open time instead.
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		logger.Debug().
			Str("dir", target).
			Int("files", len(files)-before).
			Msg("expanded directory target")
	}
	return files
}
