package pluginhost_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantkit/pluginhost"
	"github.com/quantkit/pluginhost/plugin"
	"github.com/quantkit/pluginhost/plugin/values"
)

func TestShared_ReturnsSameInstance(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	loaders := make([]*plugin.Loader, 8)
	for i := range loaders {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loaders[i] = pluginhost.Shared()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, loaders[0])
	for _, l := range loaders[1:] {
		assert.Same(t, loaders[0], l)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := filepath.Join(base, plugin.PlatformSubdir)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "binance.json"), []byte(`{
  "name": "binance",
  "display_name": "Binance",
  "adapter_class": "platforms.binance:BinanceAdapter",
  "version": "1.0.0",
  "capabilities": {"hedge_support": true, "position_mode": "hedge", "unit_type": "quantity", "supported_order_types": ["market"]},
  "required_credentials": []
}`), 0o600))

	l := plugin.NewLoader(plugin.WithBasePath(base), plugin.WithLogger(plugin.NewTestLogger()))
	ctx := pluginhost.NewContext(context.Background(), l)

	got := pluginhost.FromContext(ctx)
	assert.Same(t, l, got)
	assert.Equal(t, []string{"binance"}, got.ListNames(values.KindPlatform))
}

func TestFromContext_FallsBackToShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, pluginhost.Shared(), pluginhost.FromContext(context.Background()))
	assert.Same(t, pluginhost.Shared(), pluginhost.FromContext(pluginhost.NewContext(context.Background(), nil)))
}
