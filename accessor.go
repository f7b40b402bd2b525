// Package pluginhost gives access to the plugin loader shared by a process
// and carries explicit loader instances through a context.
package pluginhost

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/quantkit/pluginhost/config"
	"github.com/quantkit/pluginhost/plugin"
)

var (
	sharedOnce   sync.Once
	sharedLoader *plugin.Loader
)

// Shared returns the process-wide loader, building it on first use.
//
// Settings come from plugins.yaml in the detected base path when present;
// otherwise loader defaults apply. Nothing is scanned until the loader is
// first queried.
func Shared() *plugin.Loader {
	sharedOnce.Do(func() {
		sharedLoader = newSharedLoader(slog.Default())
	})
	return sharedLoader
}

func newSharedLoader(logger *slog.Logger) *plugin.Loader {
	path := filepath.Join(plugin.DefaultBasePath(), config.DefaultFileName)
	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("ignoring plugin config", "file", path, "error", err)
		cfg = config.DefaultConfig()
	}

	opts, err := cfg.LoaderOptions(logger)
	if err != nil {
		logger.Warn("ignoring plugin config", "file", path, "error", err)
		opts = []plugin.Option{plugin.WithLogger(logger)}
	}
	return plugin.NewLoader(opts...)
}

type loaderContextKey struct {
	name string
}

var loaderKey = &loaderContextKey{name: "plugin_loader"}

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *plugin.Loader) context.Context {
	return context.WithValue(ctx, loaderKey, l)
}

// FromContext returns the loader carried by ctx, or Shared when there is none.
func FromContext(ctx context.Context) *plugin.Loader {
	if l, ok := ctx.Value(loaderKey).(*plugin.Loader); ok && l != nil {
		return l
	}
	return Shared()
}
