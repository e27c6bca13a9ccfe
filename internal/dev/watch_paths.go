package dev

import (
	"path/filepath"

	"github.com/viewy-dev/viewy/internal/iconpack"
	"github.com/viewy-dev/viewy/pkg/config"
)

// CollectWatchPaths returns the configuration files of root, the
// directories of its local icon packs and extra, cleaned and deduplicated.
// Git packs are not watched.
func CollectWatchPaths(root string, packs []iconpack.Pack, extra ...string) []string {
	paths := make([]string, 0, len(config.FileNames)+len(packs)+len(extra)+1)
	for _, name := range config.FileNames {
		paths = append(paths, filepath.Join(root, name))
	}
	paths = append(paths, filepath.Join(root, config.LegacyIconsFileName))

	for _, p := range packs {
		if p.Git != "" {
			continue
		}
		paths = append(paths, resolvePath(root, p.Path))
	}

	for _, path := range extra {
		paths = append(paths, resolvePath(root, path))
	}

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}

	return unique
}

func resolvePath(root, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
