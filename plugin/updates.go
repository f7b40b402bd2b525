package plugin

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/quantkit/pluginhost/plugin/values"
)

// ReloadAll drops every cache, including symbols and recorded modification
// times, then rescans both kinds.
func (l *Loader) ReloadAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger.Info("reloading all plugins")
	l.clearLocked()
	for _, kind := range values.Kinds() {
		l.scanLocked(kind, true)
	}
	l.logger.Info("plugin reload completed",
		"platforms", len(l.descriptors[values.KindPlatform]),
		"strategies", len(l.descriptors[values.KindStrategy]))
}

// Clear drops every cache without rescanning.
func (l *Loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearLocked()
}

func (l *Loader) clearLocked() {
	for _, kind := range values.Kinds() {
		clear(l.descriptors[kind])
		clear(l.resolved[kind])
	}
	clear(l.mtimes)
}

// CheckForUpdates reports descriptor files that are new or whose
// modification time increased since last seen, and records the new times.
// It does not reload; call ReloadAll in response. Deleted files are not
// reported. An empty result means nothing changed.
func (l *Loader) CheckForUpdates() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var updated []string
	for _, kind := range values.Kinds() {
		dir := l.dirFor(kind)
		fsys := l.dirFS(dir)

		files, err := l.listDescriptorFiles(fsys)
		if err != nil {
			continue
		}

		for _, name := range files {
			info, err := fs.Stat(fsys, name)
			if err != nil {
				continue
			}
			path := filepath.Join(dir, name)
			current := info.ModTime()
			if last, seen := l.mtimes[path]; !seen || current.After(last) {
				l.mtimes[path] = current
				updated = append(updated, path)
			}
		}
	}

	sort.Strings(updated)
	if len(updated) > 0 {
		l.logger.Debug("plugin files changed", "files", updated)
	}
	return updated
}
