// Package plugin discovers platform and strategy descriptors on disk,
// caches them by name and resolves their implementation symbols on demand.
package plugin

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/quantkit/pluginhost/parser"
	"github.com/quantkit/pluginhost/plugin/entities"
	"github.com/quantkit/pluginhost/plugin/ports"
	"github.com/quantkit/pluginhost/plugin/resolvers"
	"github.com/quantkit/pluginhost/plugin/values"
	"github.com/quantkit/pluginhost/registry"
	"github.com/quantkit/pluginhost/validation"
)

// Descriptor directories relative to the base path.
var (
	PlatformSubdir = filepath.Join("platform", "plugins")
	StrategySubdir = filepath.Join("strategy", "plugins")
)

// Loader owns the descriptor and symbol caches for both plugin kinds.
// All methods are safe for concurrent use; operations are serialized.
type Loader struct {
	parser    parser.DescriptorParser
	validator validation.DescriptorValidator
	symbols   ports.SymbolResolver
	versions  ports.VersionMatcher
	logger    *slog.Logger
	dirFS     func(dir string) fs.FS

	descriptors map[values.Kind]map[string]entities.Descriptor
	resolved    map[values.Kind]map[string]any
	mtimes      map[string]time.Time

	basePath    string
	platformDir string
	strategyDir string

	mu sync.Mutex
}

// Option configures a Loader.
type Option func(*Loader)

// WithBasePath sets the directory the default plugin layout is resolved against.
func WithBasePath(path string) Option {
	return func(l *Loader) { l.basePath = path }
}

// WithPlatformDir overrides the platform descriptor directory.
func WithPlatformDir(dir string) Option {
	return func(l *Loader) { l.platformDir = dir }
}

// WithStrategyDir overrides the strategy descriptor directory.
func WithStrategyDir(dir string) Option {
	return func(l *Loader) { l.strategyDir = dir }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithParser sets the descriptor parser; its extension selects which files are read.
func WithParser(p parser.DescriptorParser) Option {
	return func(l *Loader) { l.parser = p }
}

// WithValidator sets the descriptor validator.
func WithValidator(v validation.DescriptorValidator) Option {
	return func(l *Loader) { l.validator = v }
}

// WithSymbolResolver sets where implementation references are resolved.
func WithSymbolResolver(r ports.SymbolResolver) Option {
	return func(l *Loader) { l.symbols = r }
}

// WithVersionMatcher sets the matcher used by VersionSatisfies.
func WithVersionMatcher(m ports.VersionMatcher) Option {
	return func(l *Loader) { l.versions = m }
}

// WithDirFS sets how a descriptor directory is opened. Defaults to os.DirFS.
func WithDirFS(open func(dir string) fs.FS) Option {
	return func(l *Loader) { l.dirFS = open }
}

// NewLoader creates a loader. Without options it reads JSON descriptors
// below DefaultBasePath and resolves symbols from registry.Default().
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		parser:    parser.NewJSONDescriptorParser(),
		validator: validation.NewStructuralValidator(),
		symbols:   registry.Default(),
		versions:  resolvers.NewSemverResolver(),
		logger:    slog.Default(),
		dirFS:     os.DirFS,
		descriptors: map[values.Kind]map[string]entities.Descriptor{
			values.KindPlatform: make(map[string]entities.Descriptor),
			values.KindStrategy: make(map[string]entities.Descriptor),
		},
		resolved: map[values.Kind]map[string]any{
			values.KindPlatform: make(map[string]any),
			values.KindStrategy: make(map[string]any),
		},
		mtimes: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.basePath == "" {
		l.basePath = DefaultBasePath()
	}
	if l.platformDir == "" {
		l.platformDir = filepath.Join(l.basePath, PlatformSubdir)
	}
	if l.strategyDir == "" {
		l.strategyDir = filepath.Join(l.basePath, StrategySubdir)
	}

	return l
}

// DefaultBasePath picks the first of the working directory and the
// executable's directory that contains a plugin layout, falling back to
// the working directory.
func DefaultBasePath() string {
	var candidates []string
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, wd)
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Dir(exe))
	}

	for _, c := range candidates {
		if isDir(filepath.Join(c, PlatformSubdir)) || isDir(filepath.Join(c, StrategySubdir)) {
			return c
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return "."
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// PlatformDir returns the platform descriptor directory.
func (l *Loader) PlatformDir() string {
	return l.platformDir
}

// StrategyDir returns the strategy descriptor directory.
func (l *Loader) StrategyDir() string {
	return l.strategyDir
}

func (l *Loader) dirFor(kind values.Kind) string {
	if kind == values.KindPlatform {
		return l.platformDir
	}
	return l.strategyDir
}
