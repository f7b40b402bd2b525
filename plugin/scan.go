package plugin

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/quantkit/pluginhost/plugin/entities"
	"github.com/quantkit/pluginhost/plugin/values"
)

// Scan returns a snapshot of the descriptors of one kind keyed by name.
//
// Without force, a non-empty cache is returned as is and the filesystem is
// not touched; this is memoization, not a freshness guarantee. Otherwise the
// cache is rebuilt from the kind's directory: files are processed in name
// order, failures are logged and skipped, and a later file declaring an
// existing name replaces the earlier one.
func (l *Loader) Scan(kind values.Kind, force bool) map[string]entities.Descriptor {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.scanLocked(kind, force)
	return l.snapshotLocked(kind)
}

// ScanPlatforms is Scan for platform descriptors.
func (l *Loader) ScanPlatforms(force bool) map[string]*entities.PlatformDescriptor {
	out := make(map[string]*entities.PlatformDescriptor)
	for name, d := range l.Scan(values.KindPlatform, force) {
		if p, ok := d.(*entities.PlatformDescriptor); ok {
			out[name] = p
		}
	}
	return out
}

// ScanStrategies is Scan for strategy descriptors.
func (l *Loader) ScanStrategies(force bool) map[string]*entities.StrategyDescriptor {
	out := make(map[string]*entities.StrategyDescriptor)
	for name, d := range l.Scan(values.KindStrategy, force) {
		if s, ok := d.(*entities.StrategyDescriptor); ok {
			out[name] = s
		}
	}
	return out
}

func (l *Loader) scanLocked(kind values.Kind, force bool) {
	if !kind.Valid() {
		l.logger.Error("unknown plugin kind", "kind", kind)
		return
	}

	cache := l.descriptors[kind]
	if !force && len(cache) > 0 {
		l.logger.Debug("using cached plugin descriptors", "kind", kind, "count", len(cache))
		return
	}

	clear(cache)

	dir := l.dirFor(kind)
	fsys := l.dirFS(dir)
	files, err := l.listDescriptorFiles(fsys)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("plugin directory not found", "kind", kind, "dir", dir)
		return
	}
	if err != nil {
		l.logger.Error("failed to list plugin directory", "kind", kind, "dir", dir, "error", err)
		return
	}

	for _, name := range files {
		desc, err := l.loadDescriptor(kind, fsys, dir, name)
		if err != nil {
			l.logger.Error("failed to load plugin descriptor", "kind", kind, "file", name, "error", err)
			continue
		}

		key := desc.Key()
		if prev, exists := cache[key]; exists {
			l.logger.Warn("duplicate plugin name, later file replaces earlier",
				"kind", kind,
				"plugin", key,
				"previous", prev.Origin().Path,
				"file", desc.Origin().Path)
		}
		cache[key] = desc
		l.logger.Info("loaded plugin", "kind", kind, "plugin", key, "file", name)
	}
}

// listDescriptorFiles returns the descriptor file names directly inside fsys, sorted.
func (l *Loader) listDescriptorFiles(fsys fs.FS) ([]string, error) {
	info, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %w", fs.ErrNotExist)
	}

	matches, err := doublestar.Glob(fsys, "*"+l.parser.Extension(), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob descriptors: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// loadDescriptor reads, parses, validates and decodes one file.
// The file's modification time is recorded once it has parsed.
func (l *Loader) loadDescriptor(kind values.Kind, fsys fs.FS, dir, name string) (entities.Descriptor, error) {
	path := filepath.Join(dir, name)

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("stat descriptor: %w", err)
	}

	raw, err := l.parser.Parse(data)
	if err != nil {
		return nil, &entities.MalformedDescriptorError{File: name, Err: err}
	}
	l.mtimes[path] = info.ModTime()

	if res := l.validator.Validate(kind, raw); !res.Valid {
		return nil, &entities.InvalidDescriptorError{File: name, Kind: kind, Errors: res.Errors}
	}

	source := entities.DescriptorSource{
		Path:    path,
		ModTime: info.ModTime(),
		Digest:  values.DigestOf(data),
	}
	desc, err := entities.Decode(kind, raw, source)
	if err != nil {
		return nil, &entities.InvalidDescriptorError{File: name, Kind: kind, Errors: []string{err.Error()}}
	}
	return desc, nil
}

func (l *Loader) snapshotLocked(kind values.Kind) map[string]entities.Descriptor {
	cache := l.descriptors[kind]
	out := make(map[string]entities.Descriptor, len(cache))
	for name, d := range cache {
		out[name] = d.CloneDescriptor()
	}
	return out
}
