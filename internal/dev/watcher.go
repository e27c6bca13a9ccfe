package dev

import (
	"context"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/viewy-dev/viewy/pkg/config"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	// ChangeConfig is a Viewy.toml, viewy.toml or viewy-icons.toml edit.
	ChangeConfig ChangeType = iota
	// ChangeIcon is an SVG added, edited or removed in an icon pack.
	ChangeIcon
	// ChangeGo is Go source, which needs a restart.
	ChangeGo
	ChangeOther
)

func (t ChangeType) String() string {
	switch t {
	case ChangeConfig:
		return "config"
	case ChangeIcon:
		return "icon"
	case ChangeGo:
		return "go"
	default:
		return "other"
	}
}

// Change represents a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files and directories to watch. Missing paths are
	// picked up once they appear.
	Paths []string

	// Ignore holds names, globs or slash separated segments. They are
	// matched below each watched path, never against its ancestors.
	Ignore []string

	// Debounce is the polling interval.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"tmp",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls the watched paths for modified, added and removed files.
type Watcher struct {
	config   WatcherConfig
	onChange func(Change)

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	stamps  map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(cfg WatcherConfig) *Watcher {
	if cfg.Debounce == 0 {
		cfg.Debounce = 100 * time.Millisecond
	}
	if len(cfg.Ignore) == 0 {
		cfg.Ignore = DefaultIgnore
	}
	return &Watcher{config: cfg}
}

// Paths returns the watched paths.
func (w *Watcher) Paths() []string {
	return w.config.Paths
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	stamps := w.scan()
	w.mu.Lock()
	w.stamps = stamps
	w.mu.Unlock()

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			w.poll()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// poll rescans and reports every file whose state differs from the last
// scan, in path order.
func (w *Watcher) poll() {
	current := w.scan()

	w.mu.Lock()
	previous := w.stamps
	w.stamps = current
	callback := w.onChange
	w.mu.Unlock()

	if callback == nil {
		return
	}

	var changed []string
	for p, mod := range current {
		if last, ok := previous[p]; !ok || !mod.Equal(last) {
			changed = append(changed, p)
		}
	}
	for p := range previous {
		if _, ok := current[p]; !ok {
			changed = append(changed, p)
		}
	}
	sort.Strings(changed)

	for _, p := range changed {
		callback(Change{Path: p, Type: classifyChange(p)})
	}
}

// scan returns the modification time of every watched file.
func (w *Watcher) scan() map[string]time.Time {
	stamps := make(map[string]time.Time)
	for _, root := range w.config.Paths {
		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if p != root && w.shouldIgnore(relativeTo(root, p)) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			stamps[p] = info.ModTime()
			return nil
		})
	}
	return stamps
}

func relativeTo(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

// shouldIgnore reports whether rel, a slash separated path below a
// watched path, matches an ignore pattern.
func (w *Watcher) shouldIgnore(rel string) bool {
	segments := strings.Split(rel, "/")
	name := segments[len(segments)-1]

	for _, pattern := range w.config.Ignore {
		pattern = filepath.ToSlash(strings.TrimSpace(pattern))
		switch {
		case pattern == "":
		case strings.Contains(pattern, "/"):
			if ok, _ := path.Match(pattern, rel); ok || hasSegments(segments, strings.Split(pattern, "/")) {
				return true
			}
		case strings.ContainsAny(pattern, "*?["):
			if ok, _ := path.Match(pattern, name); ok {
				return true
			}
		default:
			for _, s := range segments {
				if s == pattern {
					return true
				}
			}
		}
	}
	return false
}

// hasSegments reports whether sub occurs as consecutive segments of segments.
func hasSegments(segments, sub []string) bool {
	for i := 0; i+len(sub) <= len(segments); i++ {
		match := true
		for j := range sub {
			if segments[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// classifyChange determines the type of change from the file name.
func classifyChange(p string) ChangeType {
	name := filepath.Base(p)
	if name == config.LegacyIconsFileName {
		return ChangeConfig
	}
	for _, n := range config.FileNames {
		if name == n {
			return ChangeConfig
		}
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".svg":
		return ChangeIcon
	case ".go":
		return ChangeGo
	default:
		return ChangeOther
	}
}
